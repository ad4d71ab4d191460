package repository

import "agridev/entities"

// FarmerAggregate is everything CreateAggregate persists atomically.
type FarmerAggregate struct {
	Farmer   *entities.Farmer
	Location *entities.Location
	Partner  *entities.Partner
	Children []entities.Child
	// Lands pairs each land with the location row created for it.
	Lands []LandWithLocation
}

type LandWithLocation struct {
	Land     entities.Land
	Location entities.Location
}

type FarmerRepository interface {
	// CreateAggregate assigns the next farmer number and writes the whole
	// aggregate in one transaction. The number is read and incremented
	// inside the same transaction, which is the serialization point that
	// keeps concurrent creations from colliding.
	CreateAggregate(agg *FarmerAggregate) error
	List(page, limit int) ([]entities.Farmer, int64, error)
	ByID(id uint) (*entities.Farmer, error)
	// Delete removes the farmer and cascades to children, lands and partner
	// in one transaction.
	Delete(id uint) error
	ByQRCode(code string) (*entities.Farmer, error)
}
