package echoServer

import (
	"github.com/labstack/echo/v4"

	"librental/app/echoServer/controller"
)

type C struct {
	User        *controller.UserController
	Card        *controller.CardController
	Author      *controller.AuthorController
	Category    *controller.CategoryController
	Publication *controller.PublicationController
	Instance    *controller.InstanceController
	Reservation *controller.ReservationController
	Rental      *controller.RentalController
}

func Register(e *echo.Echo, c C) {
	e.POST("/users", c.User.Create)
	e.GET("/users/:id", c.User.Get)
	e.PATCH("/users/:id", c.User.Update)

	e.POST("/cards", c.Card.Create)
	e.GET("/cards/:id", c.Card.Get)
	e.PATCH("/cards/:id", c.Card.Update)
	e.DELETE("/cards/:id", c.Card.Delete)

	e.POST("/authors", c.Author.Create)
	e.GET("/authors/:id", c.Author.Get)
	e.PATCH("/authors/:id", c.Author.Update)
	e.DELETE("/authors/:id", c.Author.Delete)

	e.POST("/categories", c.Category.Create)
	e.GET("/categories/:id", c.Category.Get)
	e.PATCH("/categories/:id", c.Category.Update)
	e.DELETE("/categories/:id", c.Category.Delete)

	e.POST("/publications", c.Publication.Create)
	e.GET("/publications/:id", c.Publication.Get)
	e.PATCH("/publications/:id", c.Publication.Update)
	e.DELETE("/publications/:id", c.Publication.Delete)

	e.POST("/instances", c.Instance.Create)
	e.GET("/instances/:id", c.Instance.Get)
	e.PATCH("/instances/:id", c.Instance.Update)
	e.DELETE("/instances/:id", c.Instance.Delete)

	e.POST("/reservations", c.Reservation.Create)
	e.GET("/reservations/:id", c.Reservation.Get)
	e.DELETE("/reservations/:id", c.Reservation.Delete)

	e.POST("/rentals", c.Rental.Create)
	e.GET("/rentals/:id", c.Rental.Get)
	e.PATCH("/rentals/:id", c.Rental.Update)
}
