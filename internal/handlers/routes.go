package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/enxovaldb/internal/config"
	"github.com/localnerve/enxovaldb/internal/middleware"
	"github.com/localnerve/enxovaldb/internal/services"
	"github.com/localnerve/enxovaldb/internal/store"
	"github.com/sirupsen/logrus"
)

// Register mounts the registry routes on router. Paged routes are registered
// before /:id so "page" is never read as an id.
func Register(router fiber.Router, cfg *config.Config, docs store.DocumentStore, log logrus.FieldLogger) {
	users := &UserHandler{Users: services.NewUserService(docs), Log: log}
	items := &ItemHandler{Items: services.NewItemService(docs, log), Log: log}
	categories := &CategoryHandler{Categories: services.NewCategoryService(docs), Log: log}
	personalInfo := &PersonalInfoHandler{PersonalInfo: services.NewPersonalInfoService(docs), Log: log}
	health := &HealthHandler{Config: cfg, Store: docs, Log: log}
	requireJSON := middleware.RequireJSON()

	router.Get("/health", health.Health)

	u := router.Group("/users")
	u.Get("/", users.ListUsers)
	u.Get("/page/:page/:pageSize", users.PageUsers)
	u.Post("/add", requireJSON, users.AddUser)
	u.Put("/update", requireJSON, users.UpdateUser)
	u.Delete("/remove/:id", users.RemoveUser)
	u.Get("/:id", users.GetUser)

	i := router.Group("/items")
	i.Get("/", items.ListItems)
	i.Get("/page/:page/:pageSize", items.PageItems)
	i.Post("/add", requireJSON, items.AddItem)
	i.Put("/update", requireJSON, items.UpdateItem)
	i.Put("/donations", requireJSON, items.ApplyDonations)
	i.Delete("/remove/:id", items.RemoveItem)
	i.Get("/:id", items.GetItem)

	cat := router.Group("/categories")
	cat.Get("/", categories.ListCategories)
	cat.Get("/page/:page/:pageSize", categories.PageCategories)
	cat.Post("/add", requireJSON, categories.AddCategory)
	cat.Put("/update", requireJSON, categories.UpdateCategory)
	cat.Delete("/remove/:id", categories.RemoveCategory)
	cat.Get("/:id", categories.GetCategory)

	p := router.Group("/personalInfos")
	p.Get("/", personalInfo.GetPersonalInfo)
	p.Put("/update", requireJSON, personalInfo.ReplacePersonalInfo)
}
