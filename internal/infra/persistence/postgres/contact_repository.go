package postgres

import (
	"context"
	"log/slog"

	deliverycontext "foodcritic/internal/delivery/context"
	"foodcritic/internal/domain/entity"
	domainerrors "foodcritic/internal/domain/errors"
	"foodcritic/internal/domain/repository"
	"foodcritic/internal/errors"
	"foodcritic/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB, logger *slog.Logger) repository.ContactRepository {
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// FindAll returns every contact ordered by last name, then first name.
func (repo *contactRepository) FindAll(ctx context.Context) ([]*entity.Contact, error) {
	return repo.findAll(ctx, "failed to find all contacts", nil)
}

// FindByID retrieves a contact by its id.
func (repo *contactRepository) FindByID(ctx context.Context, id int64) (*entity.Contact, error) {
	var contactM model.ContactModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by id")
	}

	return toContactDomain(&contactM), nil
}

// FindByEmail retrieves the contact registered with the given email.
func (repo *contactRepository) FindByEmail(ctx context.Context, email string) (*entity.Contact, error) {
	var contactM model.ContactModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&contactM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to find contact by email")
	}

	return toContactDomain(&contactM), nil
}

// FindAllByFirstName returns the contacts with the given first name.
func (repo *contactRepository) FindAllByFirstName(ctx context.Context, firstName string) ([]*entity.Contact, error) {
	return repo.findAll(ctx, "failed to find contacts by first name", clause.Eq{Column: "first_name", Value: firstName})
}

// FindAllByLastName returns the contacts with the given last name.
func (repo *contactRepository) FindAllByLastName(ctx context.Context, lastName string) ([]*entity.Contact, error) {
	return repo.findAll(ctx, "failed to find contacts by last name", clause.Eq{Column: "last_name", Value: lastName})
}

// Create persists a new contact and assigns its id.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	deliverycontext.GetLoggerOrDefault(ctx, repo.logger).InfoContext(ctx, "Creating contact", slog.Any("contact", contact))

	contactM := fromContactDomain(contact)
	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		return translateContactWriteError(err, "failed to create contact")
	}

	contact.ID = contactM.ID

	return nil
}

// Update merges the contact into storage by id.
func (repo *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	deliverycontext.GetLoggerOrDefault(ctx, repo.logger).InfoContext(ctx, "Updating contact", slog.Any("contact", contact))

	contactM := fromContactDomain(contact)
	if err := repo.db.WithContext(ctx).Save(contactM).Error; err != nil {
		return translateContactWriteError(err, "failed to update contact")
	}

	contact.ID = contactM.ID

	return nil
}

// Delete removes the contact by id. A contact without an id is returned unchanged.
func (repo *contactRepository) Delete(ctx context.Context, contact *entity.Contact) (*entity.Contact, error) {
	deliverycontext.GetLoggerOrDefault(ctx, repo.logger).InfoContext(ctx, "Deleting contact", slog.Any("contact", contact))

	if contact.ID == 0 {
		return contact, nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ?", contact.ID).
		Delete(&model.ContactModel{}).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete contact")
	}

	return contact, nil
}

func (repo *contactRepository) findAll(ctx context.Context, failure string, filter clause.Expression) ([]*entity.Contact, error) {
	var contactModels []*model.ContactModel

	query := repo.db.WithContext(ctx)
	if filter != nil {
		query = query.Where(filter)
	}

	if err := query.
		Order("last_name").
		Order("first_name").
		Find(&contactModels).Error; err != nil {
		return nil, errors.Wrap(err, failure)
	}

	contacts := make([]*entity.Contact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, nil
}

func translateContactWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrContactEmailTaken
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		BirthDate:   entity.NewDate(data.BirthDate),
	}
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:          data.ID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		BirthDate:   data.BirthDate.Time,
	}
}
