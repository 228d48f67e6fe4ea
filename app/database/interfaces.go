package database

import (
	"context"

	"github.com/findabatherapy/citygen/app/places"
	"github.com/findabatherapy/citygen/app/states"
)

type CityRepository interface {
	ReplaceAll(ctx context.Context, tables []states.State, dataset places.Dataset) error
	GetCities(ctx context.Context, stateAbbrev string) ([]City, error)
	GetCityCount(ctx context.Context) (int, error)
	GetStates(ctx context.Context) ([]State, error)
}
