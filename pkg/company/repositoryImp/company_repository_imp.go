package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"agridev/entities"
	"agridev/pkg/company/repository"
)

type companyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CompanyRepository { return &companyRepo{db} }

func (r *companyRepo) UserByEmail(email string) (*entities.User, error) {
	var u entities.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *companyRepo) CreateAggregate(u *entities.User, comp *entities.Company, locations []entities.Location) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		comp.UserID = u.ID
		if err := tx.Create(comp).Error; err != nil {
			return err
		}
		for i := range locations {
			locations[i].CompanyID = &comp.ID
		}
		if len(locations) > 0 {
			if err := tx.Create(&locations).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *companyRepo) All() ([]entities.Company, error) {
	var out []entities.Company
	err := r.db.Preload("User").Preload("Locations").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *companyRepo) ByID(id uint) (*entities.Company, error) {
	var c entities.Company
	err := r.db.Preload("User").Preload("Locations").First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *companyRepo) Delete(comp *entities.Company) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", comp.ID).Delete(&entities.Location{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entities.Company{}, comp.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.User{}, comp.UserID).Error
	})
}
