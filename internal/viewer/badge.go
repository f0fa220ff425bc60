package viewer

import (
	"strings"

	"github.com/photoprism/gallery/internal/entity"
)

// DefaultBadge is shown if a photo has no tags, category or collections.
const DefaultBadge = "Photo"

// DefaultIcon is used if no keyword matches the badge label.
const DefaultIcon = "fa-camera"

// IconRule maps badge keywords to an icon.
type IconRule struct {
	Keywords []string
	Icon     string
}

// IconRules are checked in order, the first rule with a matching keyword wins.
var IconRules = []IconRule{
	{Keywords: []string{"sunset"}, Icon: "fa-sun"},
	{Keywords: []string{"snow", "winter"}, Icon: "fa-snowflake"},
	{Keywords: []string{"rain"}, Icon: "fa-cloud-rain"},
	{Keywords: []string{"fall", "autumn"}, Icon: "fa-leaf"},
	{Keywords: []string{"bird"}, Icon: "fa-dove"},
	{Keywords: []string{"street", "people"}, Icon: "fa-city"},
	{Keywords: []string{"campus"}, Icon: "fa-building-columns"},
	{Keywords: []string{"sky"}, Icon: "fa-cloud-sun"},
}

// Badge returns the short label shown on a card: the first tag, category,
// first collection, or the default label.
func Badge(p entity.Photo) string {
	switch {
	case p.FirstTag() != "":
		return p.FirstTag()
	case p.Category != "":
		return p.Category
	case p.FirstCollection() != "":
		return p.FirstCollection()
	default:
		return DefaultBadge
	}
}

// Icon returns the icon class for a badge label.
func Icon(label string) string {
	label = strings.ToLower(label)

	for _, rule := range IconRules {
		for _, k := range rule.Keywords {
			if strings.Contains(label, k) {
				return rule.Icon
			}
		}
	}

	return DefaultIcon
}
