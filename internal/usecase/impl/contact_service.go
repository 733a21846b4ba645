package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodcritic/internal/delivery/context"
	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
	"foodcritic/internal/usecase"
	"foodcritic/internal/usecase/validator"

	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	txManager   repository.TransactionManager
	contactRepo repository.ContactRepository
	validator   *validator.ContactValidator
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ContactRepo repository.ContactRepository
	Validator   *validator.ContactValidator
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		txManager:   params.TxManager,
		contactRepo: params.ContactRepo,
		validator:   params.Validator,
		logger:      params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *contactService) FindAll(ctx context.Context) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.FindAll(ctx)

	return contacts, propagate(err, "failed to find all contacts")
}

func (srv *contactService) FindByID(ctx context.Context, id int64) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, repository.ErrContactNotFound, domainerrors.ErrContactNotFound, "failed to find contact by id")
	}

	return contact, nil
}

func (srv *contactService) FindByEmail(ctx context.Context, email string) (*entity.Contact, error) {
	contact, err := srv.contactRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, notFound(err, repository.ErrContactNotFound, domainerrors.ErrContactNotFound, "failed to find contact by email")
	}

	return contact, nil
}

func (srv *contactService) FindAllByFirstName(ctx context.Context, firstName string) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.FindAllByFirstName(ctx, firstName)

	return contacts, propagate(err, "failed to find contacts by first name")
}

func (srv *contactService) FindAllByLastName(ctx context.Context, lastName string) ([]*entity.Contact, error) {
	contacts, err := srv.contactRepo.FindAllByLastName(ctx, lastName)

	return contacts, propagate(err, "failed to find contacts by last name")
}

// Create validates the contact and inserts it in one transaction.
func (srv *contactService) Create(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	srv.log(ctx).Debug("Creating contact", slog.String("email", contact.Email))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.NewContactRepository()

		if err := srv.validator.WithRepository(contactRepo).Validate(ctx, contact); err != nil {
			return err
		}

		return contactRepo.Create(ctx, contact)
	})
	if err != nil {
		return nil, propagate(err, "failed to create contact")
	}

	return contact, nil
}

// Update validates the contact, excluding its own record from the email check, and merges it.
func (srv *contactService) Update(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	srv.log(ctx).Debug("Updating contact", slog.Int64("contactID", contact.ID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		contactRepo := repoFactory.NewContactRepository()

		if _, err := contactRepo.FindByID(ctx, contact.ID); err != nil {
			return notFound(err, repository.ErrContactNotFound, domainerrors.ErrContactNotFound, "failed to find contact by id")
		}

		if err := srv.validator.WithRepository(contactRepo).Validate(ctx, contact); err != nil {
			return err
		}

		return contactRepo.Update(ctx, contact)
	})
	if err != nil {
		return nil, propagate(err, "failed to update contact")
	}

	return contact, nil
}

func (srv *contactService) Delete(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	if contact.ID == 0 {
		return nil, nil
	}

	var deleted *entity.Contact
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		deleted, err = repoFactory.NewContactRepository().Delete(ctx, contact)

		return err
	})
	if err != nil {
		return nil, propagate(err, "failed to delete contact")
	}

	return deleted, nil
}
