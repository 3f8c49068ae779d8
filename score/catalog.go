package score

import (
	"fmt"
)

const (
	CategoryMilestone  = "Milestone"
	CategoryHonor      = "Honor"
	CategoryAmbassador = "Ambassador"
	CategoryLegend     = "Legend"
	CategoryElite      = "Elite"
)

const (
	eliteFirstLevel = 14
	eliteLastLevel  = 50
	eliteBase       = 10000
	eliteStep       = 2000
)

// BadgeLevel - a reputation threshold bound to a badge
type BadgeLevel struct {
	Threshold int64  `json:"threshold"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Category  string `json:"category"`
	Color     string `json:"color"`
}

var seedBadges = []BadgeLevel{
	{Threshold: 100, Name: "Kind Starter", Icon: "seed-outline", Category: CategoryMilestone, Color: "#8BC34A"},
	{Threshold: 250, Name: "Bronze Donor", Icon: "shield-outline", Category: CategoryMilestone, Color: "#CD7F32"},
	{Threshold: 500, Name: "Silver Giver", Icon: "shield", Category: CategoryMilestone, Color: "#C0C0C0"},
	{Threshold: 750, Name: "Gold Provider", Icon: "trophy-outline", Category: CategoryMilestone, Color: "#FFD700"},
	{Threshold: 1000, Name: "Platinum Helper", Icon: "trophy", Category: CategoryMilestone, Color: "#E5E4E2"},
	{Threshold: 1500, Name: "Community Star", Icon: "star-outline", Category: CategoryHonor, Color: "#FFB300"},
	{Threshold: 2000, Name: "Guardian Angel", Icon: "star", Category: CategoryHonor, Color: "#29B6F6"},
	{Threshold: 3000, Name: "Kindness Hero", Icon: "heart-outline", Category: CategoryHonor, Color: "#EC407A"},
	{Threshold: 4000, Name: "Life Changer", Icon: "heart", Category: CategoryAmbassador, Color: "#E53935"},
	{Threshold: 5000, Name: "Philanthropist", Icon: "ribbon-outline", Category: CategoryAmbassador, Color: "#7E57C2"},
	{Threshold: 6000, Name: "Legendary Caretaker", Icon: "ribbon", Category: CategoryAmbassador, Color: "#5E35B1"},
	{Threshold: 7500, Name: "Global Giving King", Icon: "planet-outline", Category: CategoryLegend, Color: "#00897B"},
	{Threshold: 10000, Name: "Ultimate Humanitarian", Icon: "planet", Category: CategoryLegend, Color: "#004D40"},
}

var elitePalette = []string{"#1E88E5", "#43A047", "#FB8C00", "#8E24AA", "#F4511E", "#00ACC1"}

// catalog is built once and never mutated afterwards
var catalog = buildCatalog()

// buildCatalog extends the seed table with the elite levels. Level i gets
// threshold 10000 + (i-13)*2000 and a color rotated from the palette.
func buildCatalog() []BadgeLevel {
	levels := make([]BadgeLevel, 0, len(seedBadges)+eliteLastLevel-eliteFirstLevel+1)
	levels = append(levels, seedBadges...)

	for i := eliteFirstLevel; i <= eliteLastLevel; i++ {
		levels = append(levels, BadgeLevel{
			Threshold: eliteBase + int64(i-len(seedBadges))*eliteStep,
			Name:      fmt.Sprintf("Elite Giver Level %d", i),
			Icon:      "medal-outline",
			Category:  CategoryElite,
			Color:     elitePalette[(i-eliteFirstLevel)%len(elitePalette)],
		})
	}

	return levels
}

// Catalog returns a copy of the badge catalog ordered by threshold
func Catalog() []BadgeLevel {
	levels := make([]BadgeLevel, len(catalog))
	copy(levels, catalog)
	return levels
}

// LookupBadge finds a catalog entry by name
func LookupBadge(name string) (BadgeLevel, bool) {
	for _, b := range catalog {
		if b.Name == name {
			return b, true
		}
	}
	return BadgeLevel{}, false
}

// NextBadge returns the first badge whose threshold is above the given points
func NextBadge(points int64) (BadgeLevel, bool) {
	for _, b := range catalog {
		if b.Threshold > points {
			return b, true
		}
	}
	return BadgeLevel{}, false
}
