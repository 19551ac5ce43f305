package initialize

import (
	"fmt"
	"net/http"

	"monresto/app/controllers"
	"monresto/app/db"
	"monresto/app/hash"
	jwtutil "monresto/app/jwt"
	"monresto/app/middleware"
	"monresto/app/models"
	"monresto/app/repo"
	"monresto/app/services"
	"monresto/config"
	"monresto/global"
	"monresto/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg        *config.Config
	DB         *gorm.DB
	Router     http.Handler
	Auth       *controllers.AuthController
	Contacts   *controllers.ContactController
	Categories *controllers.CategoryController
	Articles   *controllers.ArticleController
	Orders     *controllers.OrderController
	Payments   *controllers.PaymentController
	Users      *services.UserService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// New wires the application from an already loaded configuration.
func New(cfg *config.Config) (*App, error) {
	global.Config = cfg

	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
		Path:     cfg.DB.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Article{},
		&models.Contact{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Deny-list: redis when configured, otherwise in-process.
	var denied services.TokenDenylist
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		global.Rdb = rdb
		denied = services.NewRedisDenylist(rdb)
	} else {
		denied = services.NewMemoryDenylist()
	}

	// Repositories
	userRepo := repo.NewUserRepository(gdb)
	contactRepo := repo.NewContactRepository(gdb)
	categoryRepo := repo.NewCategoryRepository(gdb)
	articleRepo := repo.NewArticleRepository(gdb)
	orderRepo := repo.NewOrderRepository(gdb)
	paymentRepo := repo.NewPaymentRepository(gdb)

	// Services
	hasher := hash.New([]byte(cfg.HashKey))
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, Audience: cfg.JWT.Audience, ExpMin: cfg.JWT.ExpMin}
	userSvc := services.NewUserService(userRepo, hasher, signer, denied)
	contactSvc := services.NewContactService(contactRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	articleSvc := services.NewArticleService(articleRepo)
	orderSvc := services.NewOrderService(orderRepo, articleRepo, userRepo)
	paymentSvc := services.NewPaymentService(paymentRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(userSvc)
	contactCtrl := controllers.NewContactController(contactSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	articleCtrl := controllers.NewArticleController(articleSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	mw := &middleware.Auth{Signer: signer}

	h := router.NewRouter(authCtrl, contactCtrl, categoryCtrl, articleCtrl, orderCtrl, paymentCtrl, mw)
	h = middleware.Logging(h)

	return &App{
		Cfg:        cfg,
		DB:         gdb,
		Router:     h,
		Auth:       authCtrl,
		Contacts:   contactCtrl,
		Categories: categoryCtrl,
		Articles:   articleCtrl,
		Orders:     orderCtrl,
		Payments:   paymentCtrl,
		Users:      userSvc,
	}, nil
}
