package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCar(t *testing.T) {
	companyID := uuid.New()

	t.Run("normalizes identifiers and names", func(t *testing.T) {
		c, err := NewCar(companyID, CarDetails{
			BatchNo:       "03",
			ChassisNumber: " nze141-300 1234 ",
			Make:          "toyota",
			Model:         "corolla axio",
			Color:         "PEARL WHITE",
			Year:          2015,
		})
		require.NoError(t, err)
		assert.Equal(t, "NZE141-3001234", c.ChassisNumber)
		assert.Equal(t, "Toyota", c.Make)
		assert.Equal(t, "Corolla Axio", c.Model)
		assert.Equal(t, "Pearl White", c.Color)
		assert.Equal(t, CarStatusInStock, c.Status)
	})

	t.Run("requires chassis number", func(t *testing.T) {
		_, err := NewCar(companyID, CarDetails{Make: "Honda"})
		assert.Error(t, err)
	})

	t.Run("rejects implausible year and negative mileage", func(t *testing.T) {
		_, err := NewCar(companyID, CarDetails{ChassisNumber: "X1", Year: 1800})
		assert.Error(t, err)
		_, err = NewCar(companyID, CarDetails{ChassisNumber: "X1", Mileage: -5})
		assert.Error(t, err)
	})

	t.Run("rejects negative financing", func(t *testing.T) {
		_, err := NewCar(companyID, CarDetails{ChassisNumber: "X1", Financing: &Financing{SalesTax: d("-1")}})
		assert.Error(t, err)
	})
}

func TestCar_Apply(t *testing.T) {
	c, err := NewCar(uuid.New(), CarDetails{ChassisNumber: "X1"})
	require.NoError(t, err)

	chassis := "x2"
	bogus := CarStatus("scrapped")
	require.NoError(t, c.Apply(CarUpdate{ChassisNumber: &chassis}))
	assert.Equal(t, "X2", c.ChassisNumber)

	assert.Error(t, c.Apply(CarUpdate{Status: &bogus}))
	assert.Equal(t, CarStatusInStock, c.Status, "failed update leaves the car untouched")

	c2, err := NewCar(uuid.New(), CarDetails{ChassisNumber: "X3"})
	require.NoError(t, err)
	c2.MarkSold()
	assert.Equal(t, CarStatusSold, c2.Status)

	c2.MarkInStock()
	assert.Equal(t, CarStatusInStock, c2.Status)
}
