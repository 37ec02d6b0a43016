package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/platform/obs"
	"waste-route-service/internal/ports"
)

const maxNearbyOptions = 3

// ClassifierModel identifies the classifier in responses.
var ClassifierModel = ModelMeta{Model: "YUKTI-Mock-AI v1.0", Mode: "inference", Version: "v1"}

type ModelMeta struct {
	Model   string `json:"model"`
	Mode    string `json:"mode"`
	Version string `json:"version"`
}

// NearbyOption is a drop-off place for the classified material.
type NearbyOption struct {
	domain.GeoEntity
	DistanceKm float64 `json:"distance_km"`
}

type Classification struct {
	Decision              domain.RecycleDecision `json:"decision"`
	DecisionConfidence    string                 `json:"decision_confidence"`
	NeedsUserConfirmation bool                   `json:"needs_user_confirmation"`
	Material              domain.Material        `json:"material"`
	NearbyOptions         []NearbyOption         `json:"nearby_options"`
	Alternatives          []domain.Material      `json:"alternatives"`
	Meta                  ModelMeta              `json:"meta"`
}

// ClassifyService labels an uploaded image and suggests where to take it.
type ClassifyService struct {
	Classifier ports.Classifier
	Entities   []domain.GeoEntity
}

func NewClassifyService(c ports.Classifier, entities []domain.GeoEntity) *ClassifyService {
	if entities == nil {
		entities = domain.DefaultGeoEntities
	}
	return &ClassifyService{Classifier: c, Entities: entities}
}

// Classify labels image and lists up to three nearby places, closest first,
// that accept the material. Non-recyclable material has no drop-off options.
func (s *ClassifyService) Classify(ctx context.Context, image []byte, from domain.Point) (_ *Classification, err error) {
	defer obs.Time(ctx, "classify")(&err)

	if len(image) == 0 {
		return nil, errors.New("classify: image must be non-empty")
	}

	material, err := s.Classifier.Classify(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	return &Classification{
		Decision:              material.Decision,
		DecisionConfidence:    "HIGH",
		NeedsUserConfirmation: false,
		Material:              material,
		NearbyOptions:         s.nearby(material, from),
		Alternatives: []domain.Material{
			{ID: "misc", DisplayName: "Mixed Waste", Confidence: 0.05},
		},
		Meta: ClassifierModel,
	}, nil
}

func (s *ClassifyService) nearby(m domain.Material, from domain.Point) []NearbyOption {
	out := make([]NearbyOption, 0, maxNearbyOptions)
	if m.Decision != domain.Recyclable {
		return out
	}

	for _, e := range s.Entities {
		if e.AcceptsMaterial(m.ID) {
			out = append(out, NearbyOption{GeoEntity: e, DistanceKm: Distance(from, e.Point())})
		}
	}

	slices.SortStableFunc(out, func(a, b NearbyOption) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		}
		return 0
	})

	if len(out) > maxNearbyOptions {
		out = out[:maxNearbyOptions]
	}
	return out
}
