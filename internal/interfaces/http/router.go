package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seifmegahed/daftar-sub000/internal/application/auth"
	"github.com/seifmegahed/daftar-sub000/internal/application/usecase"
	"github.com/seifmegahed/daftar-sub000/internal/domain"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	ClientUC      *usecase.ClientUseCase
	SupplierUC    *usecase.SupplierUseCase
	ContactInfoUC *usecase.ContactInfoUseCase
	ProjectUC     *usecase.ProjectUseCase
	ItemUC        *usecase.ItemUseCase
	DocumentUC    *usecase.DocumentUseCase
	OfferUC       *usecase.OfferUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id/role", userHandler.UpdateRole)
	users.Put("/:id/activate", userHandler.Activate)
	users.Put("/:id/deactivate", userHandler.Deactivate)
	users.Put("/:id/password", userHandler.SetPassword)
	users.Put("/:id/unlock", userHandler.Unlock)

	// Clients
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.DocumentUC)
	contactInfoHandler := NewContactInfoHandler(deps.ContactInfoUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)
	clients.Get("/:id/documents", clientHandler.Documents)
	clients.Post("/:id/addresses", contactInfoHandler.AddAddress(domain.RefClient))
	clients.Get("/:id/addresses", contactInfoHandler.ListAddresses(domain.RefClient))
	clients.Post("/:id/contacts", contactInfoHandler.AddContact(domain.RefClient))
	clients.Get("/:id/contacts", contactInfoHandler.ListContacts(domain.RefClient))

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.DocumentUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)
	suppliers.Get("/:id/documents", supplierHandler.Documents)
	suppliers.Post("/:id/addresses", contactInfoHandler.AddAddress(domain.RefSupplier))
	suppliers.Get("/:id/addresses", contactInfoHandler.ListAddresses(domain.RefSupplier))
	suppliers.Post("/:id/contacts", contactInfoHandler.AddContact(domain.RefSupplier))
	suppliers.Get("/:id/contacts", contactInfoHandler.ListContacts(domain.RefSupplier))

	// Addresses / Contacts (edición y borrado directos)
	protected.Put("/addresses/:id", contactInfoHandler.UpdateAddress)
	protected.Delete("/addresses/:id", contactInfoHandler.DeleteAddress)
	protected.Put("/contacts/:id", contactInfoHandler.UpdateContact)
	protected.Delete("/contacts/:id", contactInfoHandler.DeleteContact)

	// Projects
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.OfferUC, deps.DocumentUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Put("/:id", projectHandler.Update)
	projects.Delete("/:id", projectHandler.Delete)
	projects.Put("/:id/owner", projectHandler.TransferOwner)
	projects.Put("/:id/status", projectHandler.SetStatus)
	projects.Post("/:id/purchase-items", projectHandler.AddPurchaseItem)
	projects.Post("/:id/sale-items", projectHandler.AddSaleItem)
	projects.Post("/:id/items/:itemId", projectHandler.LinkItem)
	projects.Get("/:id/items", projectHandler.Items)
	projects.Get("/:id/offer", projectHandler.Offer)
	projects.Get("/:id/documents", projectHandler.Documents)

	// Items
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.DocumentUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Get("/:id/documents", itemHandler.Documents)

	// Documents
	documents := protected.Group("/documents")
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	documents.Post("/", documentHandler.Upload)
	documents.Get("/", documentHandler.List)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Get("/:id/download", documentHandler.Download)
	documents.Post("/:id/relations", documentHandler.Relate)
	documents.Delete("/:id", documentHandler.Delete)
}
