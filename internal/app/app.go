package app

import (
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"jobboard-api/config"
	"jobboard-api/internal/blobstore"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"
	"jobboard-api/internal/storage/postgres"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	Tokens   services.TokenService
	Denylist services.TokenDenylist

	AuthService        services.AuthService
	JobService         services.JobService
	ApplicationService services.ApplicationService
	UserService        services.UserService
	UploadService      services.UploadService
}

// New wires repositories and services around the shared pool and clients.
func New(cfg *config.Config, pool *pgxpool.Pool, redisClient *redis.Client, validate *validator.Validate) *Application {
	userRepo := postgres.NewUserRepo(pool)
	jobRepo := postgres.NewJobRepo(pool)
	appRepo := postgres.NewApplicationRepo(pool)

	tokens := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.Expiration)
	denylist := services.NewRedisDenylist(redisClient)
	store := blobstore.NewHTTPStore(cfg.Uploads)

	return &Application{
		Config:      cfg,
		DBPool:      pool,
		RedisClient: redisClient,
		Validator:   validate,

		Tokens:   tokens,
		Denylist: denylist,

		AuthService:        services.NewAuthService(userRepo, tokens, denylist),
		JobService:         services.NewJobService(jobRepo),
		ApplicationService: services.NewApplicationService(appRepo, jobRepo, userRepo, pool, models.ApplicationStatus(cfg.Application.DefaultStatus)),
		UserService:        services.NewUserService(userRepo, appRepo),
		UploadService:      services.NewUploadService(store, userRepo),
	}
}
