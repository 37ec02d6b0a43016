package domain

type RecycleDecision string

const (
	Recyclable    RecycleDecision = "RECYCLABLE"
	NotRecyclable RecycleDecision = "NOT_RECYCLABLE"
)

// A material label produced by image classification.
type Material struct {
	ID          string          `json:"id"`
	DisplayName string          `json:"display_name"`
	Confidence  float64         `json:"confidence"`
	Decision    RecycleDecision `json:"decision"`
}

// KnownMaterials is the fixed label set the classifier chooses from.
var KnownMaterials = []Material{
	{ID: "plastic", DisplayName: "Plastic Bottle", Confidence: 0.92, Decision: Recyclable},
	{ID: "paper", DisplayName: "Cardboard Box", Confidence: 0.88, Decision: Recyclable},
	{ID: "metal", DisplayName: "Aluminum Can", Confidence: 0.94, Decision: Recyclable},
	{ID: "organic", DisplayName: "Food Scraps", Confidence: 0.85, Decision: NotRecyclable},
	{ID: "e_waste", DisplayName: "Electronic Component", Confidence: 0.91, Decision: Recyclable},
}
