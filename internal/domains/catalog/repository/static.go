package repository

import (
	"github.com/shopspring/decimal"

	"karzone-backend/internal/domains/catalog/model"
)

// CarRepository serves the vehicle catalog. The catalog is static reference
// data shipped with the application; there is no write path.
type CarRepository interface {
	List() []model.Car
	GetByID(id int) (*model.Car, error)
}

type staticCarRepository struct {
	cars []model.Car
}

func NewStaticCarRepository() CarRepository {
	return &staticCarRepository{cars: fleet}
}

func (r *staticCarRepository) List() []model.Car {
	// Copy so callers cannot mutate the catalog
	out := make([]model.Car, len(r.cars))
	copy(out, r.cars)
	return out
}

func (r *staticCarRepository) GetByID(id int) (*model.Car, error) {
	for i := range r.cars {
		if r.cars[i].ID == id {
			car := r.cars[i]
			return &car, nil
		}
	}
	return nil, model.ErrCarNotFound
}

func inr(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount)
}

// fleet mirrors the storefront's listing data.
var fleet = []model.Car{
	{
		ID: 1, Name: "BMW M4 Competition", Type: "Coupe",
		Image:       "https://images.karzone.dev/cars/bmw-m4.jpg",
		PricePerDay: inr(12000),
		Seats:       4, Fuel: "Petrol", Transmission: "Automatic", Mileage: "10 km/l",
	},
	{
		ID: 2, Name: "Mercedes-Benz E-Class", Type: "Sedan",
		Image:       "https://images.karzone.dev/cars/mercedes-e-class.jpg",
		PricePerDay: inr(9500),
		Seats:       5, Fuel: "Diesel", Transmission: "Automatic", Mileage: "14 km/l",
	},
	{
		ID: 3, Name: "Audi Q7", Type: "SUV",
		Image:       "https://images.karzone.dev/cars/audi-q7.jpg",
		PricePerDay: inr(11000),
		Seats:       7, Fuel: "Diesel", Transmission: "Automatic", Mileage: "12 km/l",
	},
	{
		ID: 4, Name: "Toyota Fortuner", Type: "SUV",
		Image:       "https://images.karzone.dev/cars/toyota-fortuner.jpg",
		PricePerDay: inr(7000),
		Seats:       7, Fuel: "Diesel", Transmission: "Manual", Mileage: "13 km/l",
	},
	{
		ID: 5, Name: "Hyundai Creta", Type: "SUV",
		Image:       "https://images.karzone.dev/cars/hyundai-creta.jpg",
		PricePerDay: inr(5000),
		Seats:       5, Fuel: "Petrol", Transmission: "Automatic", Mileage: "16 km/l",
	},
	{
		ID: 6, Name: "Mahindra Thar", Type: "Off-Road",
		Image:       "https://images.karzone.dev/cars/mahindra-thar.jpg",
		PricePerDay: inr(5500),
		Seats:       4, Fuel: "Diesel", Transmission: "Manual", Mileage: "15 km/l",
	},
	{
		ID: 7, Name: "Honda City", Type: "Sedan",
		Image:       "https://images.karzone.dev/cars/honda-city.jpg",
		PricePerDay: inr(4000),
		Seats:       5, Fuel: "Petrol", Transmission: "Automatic", Mileage: "18 km/l",
	},
	{
		ID: 8, Name: "Maruti Suzuki Swift", Type: "Hatchback",
		Image:       "https://images.karzone.dev/cars/maruti-swift.jpg",
		PricePerDay: inr(2500),
		Seats:       5, Fuel: "Petrol", Transmission: "Manual", Mileage: "22 km/l",
	},
}
