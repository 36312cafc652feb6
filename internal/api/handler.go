package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/shecare/internal/db"
	"github.com/terraincognita07/shecare/internal/logger"
	"github.com/terraincognita07/shecare/internal/services"
	"gorm.io/gorm"
)

const minSecretKeyLength = 32

type HandlerConfig struct {
	SecretKey    string
	Location     *time.Location
	CookieSecure bool
	Now          func() time.Time
	Logger       *logger.Logger
	RiskModels   services.RiskModels
	Nutrition    *services.NutritionCatalog
}

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	now          func() time.Time
	log          *logger.Logger
	loginLimiter *attemptLimiter

	authService       *services.AuthService
	periodService     *services.PeriodService
	insightsService   *services.CycleInsightsService
	predictionService *services.PredictionService
	nutrition         *services.NutritionCatalog
}

func NewHandler(database *gorm.DB, config HandlerConfig) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if len(config.SecretKey) < minSecretKeyLength {
		return nil, errors.New("secret key must be at least 32 characters")
	}
	if config.RiskModels.PCOS == nil || config.RiskModels.Anemia == nil || config.RiskModels.BreastCancer == nil {
		return nil, errors.New("risk models are required")
	}
	if config.Nutrition == nil {
		return nil, errors.New("nutrition catalog is required")
	}
	if config.Location == nil {
		config.Location = time.UTC
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.Logger == nil {
		config.Logger = logger.NewNop()
	}

	repositories := db.NewRepositories(database)
	insights := services.NewCycleInsightsService(repositories.PeriodLogs, config.Location, config.Now)

	return &Handler{
		secretKey:         []byte(config.SecretKey),
		location:          config.Location,
		cookieSecure:      config.CookieSecure,
		now:               config.Now,
		log:               config.Logger,
		loginLimiter:      newAttemptLimiter(),
		authService:       services.NewAuthService(repositories.Users, config.Now),
		periodService:     services.NewPeriodService(repositories.PeriodLogs, config.Now),
		insightsService:   insights,
		predictionService: services.NewPredictionService(config.RiskModels, repositories.Predictions, insights, config.Now),
		nutrition:         config.Nutrition,
	}, nil
}
