package handler

import (
	"log/slog"
	"net/http"

	"foodcritic/internal/delivery/api/response"
	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const contactEntityName = "Contact"

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler serves the address book endpoints.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// contactQuery selects which contact listing a GET /contacts call returns.
type contactQuery struct {
	Email     string `query:"email" validate:"omitempty,email"`
	FirstName string `query:"firstname"`
	LastName  string `query:"lastname"`
}

// ListContacts returns all contacts, the contacts sharing a first or last
// name, or the single contact owning an email address.
func (h *ContactHandler) ListContacts(c echo.Context) error {
	var query contactQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "Invalid contact query")
	}
	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()

	switch {
	case query.Email != "":
		contact, err := h.contactUC.FindByEmail(ctx, query.Email)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, contact)
	case query.FirstName != "":
		contacts, err := h.contactUC.FindAllByFirstName(ctx, query.FirstName)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, contacts)
	case query.LastName != "":
		contacts, err := h.contactUC.FindAllByLastName(ctx, query.LastName)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, contacts)
	}

	contacts, err := h.contactUC.FindAll(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contacts)
}

// GetContact returns one contact by id.
func (h *ContactHandler) GetContact(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	contact, err := h.contactUC.FindByID(c.Request().Context(), id)
	if err != nil {
		return lookupFailed(c, err, domainerrors.ErrContactNotFound, contactEntityName, id)
	}

	return response.Success(c, http.StatusOK, contact)
}

// CreateContact stores a new contact.
func (h *ContactHandler) CreateContact(c echo.Context) error {
	var contact *entity.Contact
	if err := c.Bind(&contact); err != nil || contact == nil {
		return response.BindingError(c, "Invalid contact input")
	}

	if contact.ID != 0 {
		return idNotAllowed(c, "contact")
	}

	created, err := h.contactUC.Create(c.Request().Context(), contact)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

// UpdateContact merges a contact identified by the path or by the body.
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	var contact *entity.Contact
	if err := c.Bind(&contact); err != nil || contact == nil {
		return response.BindingError(c, "Invalid contact input")
	}

	if c.Param("id") != "" {
		id, err := pathID(c)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		switch contact.ID {
		case 0:
			contact.ID = id
		case id:
		default:
			return response.BadRequest(c, "ID_MISMATCH", "The id in the path does not match the id in the body")
		}
	}

	if contact.ID == 0 {
		return response.BadRequest(c, "ID_REQUIRED", "An existing contact must have an id")
	}

	updated, err := h.contactUC.Update(c.Request().Context(), contact)
	if err != nil {
		return lookupFailed(c, err, domainerrors.ErrContactNotFound, contactEntityName, contact.ID)
	}

	return response.Success(c, http.StatusOK, updated)
}

// DeleteContact removes a contact by id.
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()

	contact, err := h.contactUC.FindByID(ctx, id)
	if err != nil {
		return lookupFailed(c, err, domainerrors.ErrContactNotFound, contactEntityName, id)
	}

	if _, err := h.contactUC.Delete(ctx, contact); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
