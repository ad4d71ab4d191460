package repositoryImp

import (
	"gorm.io/gorm"

	"agridev/entities"
	"agridev/pkg/search/repository"
)

type searchRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SearchRepository { return &searchRepo{db} }

func (r *searchRepo) AllFarmers() ([]entities.Farmer, error) {
	var out []entities.Farmer
	err := r.db.Preload("Lands").Preload("Locations").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
