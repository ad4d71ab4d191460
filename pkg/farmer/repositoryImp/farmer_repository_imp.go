package repositoryImp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"agridev/entities"
	"agridev/pkg/farmer/repository"
)

type farmerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmerRepository { return &farmerRepo{db} }

// CreateAggregate retries when two concurrent creations compute the same
// farmer number: the unique index fails the loser, and a fresh transaction
// recomputes against the winner's committed row.
func (r *farmerRepo) CreateAggregate(agg *repository.FarmerAggregate) error {
	var err error
	for attempt := 0; attempt < 3; attempt++ {
		err = r.createAggregate(agg)
		if !isNumberTaken(err) {
			return err
		}
	}
	return err
}

func (r *farmerRepo) createAggregate(agg *repository.FarmerAggregate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		number, err := nextFarmerNumber(tx)
		if err != nil {
			return err
		}
		agg.Farmer.FarmerNumber = number

		if err := tx.Create(agg.Farmer).Error; err != nil {
			return err
		}

		if agg.Location != nil {
			agg.Location.FarmerID = &agg.Farmer.ID
			if err := tx.Create(agg.Location).Error; err != nil {
				return err
			}
		}

		if agg.Partner != nil {
			agg.Partner.FarmerID = agg.Farmer.ID
			if err := tx.Create(agg.Partner).Error; err != nil {
				return err
			}
		}

		if len(agg.Children) > 0 {
			for i := range agg.Children {
				agg.Children[i].FarmerID = agg.Farmer.ID
			}
			if err := tx.Create(&agg.Children).Error; err != nil {
				return err
			}
		}

		for i := range agg.Lands {
			lw := &agg.Lands[i]
			if err := tx.Create(&lw.Location).Error; err != nil {
				return err
			}
			lw.Land.FarmerID = agg.Farmer.ID
			if err := tx.Create(&lw.Land).Error; err != nil {
				return err
			}
			join := entities.LandLocation{LandID: lw.Land.ID, LocationID: lw.Location.ID}
			if err := tx.Create(&join).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func isNumberTaken(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed: farmers.farmer_number")
}

// nextFarmerNumber reads the current maximum and increments, padded to at
// least four digits. Ordering by length first keeps "10000" above "9999".
func nextFarmerNumber(tx *gorm.DB) (string, error) {
	var last entities.Farmer
	err := tx.Select("farmer_number").
		Order("length(farmer_number) DESC, farmer_number DESC").
		First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "0001", nil
	}
	if err != nil {
		return "", err
	}
	n, err := strconv.Atoi(last.FarmerNumber)
	if err != nil {
		return "", fmt.Errorf("bad farmer number %q: %w", last.FarmerNumber, err)
	}
	return fmt.Sprintf("%04d", n+1), nil
}

func (r *farmerRepo) List(page, limit int) ([]entities.Farmer, int64, error) {
	var out []entities.Farmer
	err := r.db.
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("Locations").
		Preload("Partner").
		Preload("Children").
		Preload("Lands").
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := r.db.Model(&entities.Farmer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *farmerRepo) ByID(id uint) (*entities.Farmer, error) {
	var f entities.Farmer
	err := r.db.
		Preload("Partner").
		Preload("Locations").
		Preload("Children").
		Preload("Lands").
		Preload("Lands.Locations").
		Preload("Lands.Locations.Location").
		First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *farmerRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("farmer_id = ?", id).Delete(&entities.Child{}).Error; err != nil {
			return err
		}
		if err := tx.Where("farmer_id = ?", id).Delete(&entities.Land{}).Error; err != nil {
			return err
		}
		if err := tx.Where("farmer_id = ?", id).Delete(&entities.Partner{}).Error; err != nil {
			return err
		}
		if err := tx.Where("farmer_id = ?", id).Delete(&entities.Location{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Farmer{}, id).Error
	})
}

func (r *farmerRepo) ByQRCode(code string) (*entities.Farmer, error) {
	var f entities.Farmer
	err := r.db.Where("qr_code = ?", code).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
