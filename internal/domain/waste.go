package domain

// WasteType classifies what a household hands over at a pickup.
type WasteType string

const (
	WasteWet    WasteType = "wet"
	WasteDry    WasteType = "dry"
	WasteEWaste WasteType = "e-waste"
)

// WasteTypes lists the known waste types in display order.
var WasteTypes = []WasteType{WasteWet, WasteDry, WasteEWaste}

// Bid value per bag (or per item for e-waste), in rupees.
var WasteRates = map[WasteType]int{
	WasteWet:    15,
	WasteDry:    25,
	WasteEWaste: 150,
}

var WasteDescriptions = map[WasteType]string{
	WasteWet:    "Organic waste, food scraps, vegetable peels, garden waste.",
	WasteDry:    "Plastic bottles, paper, cardboard, metal cans, glass.",
	WasteEWaste: "Batteries, old phones, cables, chargers, electronic parts.",
}

// Valid reports whether t is one of the known waste types.
func (t WasteType) Valid() bool {
	_, ok := WasteRates[t]
	return ok
}

func (t WasteType) Description() string { return WasteDescriptions[t] }

// Rate returns the bid value for t, or 0 for unknown types.
func (t WasteType) Rate() int { return WasteRates[t] }
