package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"librental/app/echoServer"
	"librental/app/echoServer/controller"
	"librental/app/echoServer/validation"
	"librental/config"
	authorrepo "librental/repository/author"
	cardrepo "librental/repository/card"
	categoryrepo "librental/repository/category"
	instancerepo "librental/repository/instance"
	pubrepo "librental/repository/publication"
	rentalrepo "librental/repository/rental"
	reservationrepo "librental/repository/reservation"
	userrepo "librental/repository/user"
	authorsvc "librental/service/author"
	cardsvc "librental/service/card"
	categorysvc "librental/service/category"
	instancesvc "librental/service/instance"
	pubsvc "librental/service/publication"
	rentalsvc "librental/service/rental"
	reservationsvc "librental/service/reservation"
	usersvc "librental/service/user"
	"librental/util/database"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ur := userrepo.New(db)
	cr := cardrepo.New(db)
	ar := authorrepo.New(db)
	ctr := categoryrepo.New(db)
	pr := pubrepo.New(db)
	ir := instancerepo.New(db)
	rr := reservationrepo.New(db)
	rtr := rentalrepo.New(db)

	// services
	us := usersvc.New(ur)
	cs := cardsvc.New(cr, ur)
	as := authorsvc.New(ar)
	cts := categorysvc.New(ctr)
	ps := pubsvc.New(pr, ar, ctr)
	is := instancesvc.New(ir, pr)
	rs := reservationsvc.New(rr, ur, pr)
	rts := rentalsvc.New(rtr)

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{"status": "ok"})
	})

	echoServer.Register(e, echoServer.C{
		User:        &controller.UserController{Svc: us, Log: log},
		Card:        &controller.CardController{Svc: cs, Log: log},
		Author:      &controller.AuthorController{Svc: as, Log: log},
		Category:    &controller.CategoryController{Svc: cts, Log: log},
		Publication: &controller.PublicationController{Svc: ps, Log: log},
		Instance:    &controller.InstanceController{Svc: is, Log: log},
		Reservation: &controller.ReservationController{Svc: rs, Log: log},
		Rental:      &controller.RentalController{Svc: rts, Log: log},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)
	e.Logger.Fatal(e.Start(":" + port))
}
