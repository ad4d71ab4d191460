package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"agridev/entities"
	"agridev/pkg/volunteer/repository"
)

type volunteerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.VolunteerRepository { return &volunteerRepo{db} }

func (r *volunteerRepo) UserByEmail(email string) (*entities.User, error) {
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

func (r *volunteerRepo) CreateWithLocations(u *entities.User, locations []entities.Location) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		for i := range locations {
			locations[i].UserID = &u.ID
		}
		if len(locations) > 0 {
			if err := tx.Create(&locations).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *volunteerRepo) AllVolunteers() ([]entities.User, error) {
	var out []entities.User
	err := r.db.Where("role = ?", entities.RoleVolunteer).Preload("Locations").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *volunteerRepo) ByID(id uint) (*entities.User, error) {
	var u entities.User
	err := r.db.Preload("Locations").First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *volunteerRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&entities.Location{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.User{}, id).Error
	})
}
