package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"homelet/internal/database"
	"homelet/internal/middleware"
	"homelet/internal/modules/admin"
	authmod "homelet/internal/modules/auth"
	"homelet/internal/modules/booking"
	"homelet/internal/modules/favorite"
	"homelet/internal/modules/listing"
	"homelet/internal/modules/payment"
	"homelet/internal/modules/review"
	jwtsvc "homelet/internal/pkg/jwt"
	"homelet/internal/pkg/notify"
	"homelet/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	codePepper := os.Getenv("VERIFICATION_CODE_PEPPER")
	if codePepper == "" {
		log.Fatal("VERIFICATION_CODE_PEPPER is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	store := repository.NewStore(db)
	userRepo := repository.NewUserRepository(db)
	houseRepo := repository.NewHouseRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	reportRepo := repository.NewReportRepository(db)
	codeRepo := repository.NewVerificationCodeRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	sender := notify.NewConsoleSender(os.Getenv("NOTIFY_CONSOLE") != "off")
	mailer := authmod.NewDevConsoleMailer(os.Getenv("DEV_MAILER") != "off")
	projector := listing.NewProjector()

	authService := authmod.NewService(userRepo, codeRepo, j, mailer, codePepper, 5*time.Minute, time.Minute)
	authHandler := authmod.NewHandler(authService)

	listingService := listing.NewService(houseRepo, projector, store)
	listingHandler := listing.NewHandler(listingService)

	bookingService := booking.NewService(store, projector, sender)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(store, projector, sender)
	paymentHandler := payment.NewHandler(paymentService)

	reviewService := review.NewService(reviewRepo, reportRepo, houseRepo, userRepo)
	reviewHandler := review.NewHandler(reviewService)

	favoriteService := favorite.NewService(favoriteRepo, houseRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	adminService := admin.NewService(userRepo, houseRepo, reportRepo)
	adminHandler := admin.NewHandler(adminService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		listingHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)

		// any authenticated user
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			favoriteHandler.RegisterRoutes(protected)

			owner := protected.Group("/")
			owner.Use(middleware.OwnerOnly())
			{
				listingHandler.RegisterOwnerRoutes(owner)
			}

			adm := protected.Group("/")
			adm.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adm)
			}
		}
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
