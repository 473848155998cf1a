// Package view holds the display formatters for sprinkler and history
// records. Everything here is pure string derivation: the package never
// touches the store and never fails — malformed input degrades to a
// placeholder instead of an error.
package view

import (
	"github.com/greenhose/sprinklerd/internal/domain"
)

// DisplayDetail is the display tuple for a history record's action: a title
// and description for the card, plus the icon template name and its variant.
type DisplayDetail struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	IconTemplate string `json:"iconTemplate"`
	IconType     string `json:"iconType"`
}

// statusDetails maps every recognized action to its display tuple.
var statusDetails = map[domain.HistoryAction]DisplayDetail{
	domain.ActionStop: {
		Title:        "Turned Off",
		Description:  "was turned off",
		IconTemplate: "iconStop",
		IconType:     "default",
	},
	domain.ActionStart: {
		Title:        "Turned On",
		Description:  "was turned on",
		IconTemplate: "iconStart",
		IconType:     "default",
	},
	domain.ActionPause: {
		Title:        "Paused",
		Description:  "was paused",
		IconTemplate: "iconPause",
		IconType:     "default",
	},
	domain.ActionResume: {
		Title:        "Resumed",
		Description:  "was resumed",
		IconTemplate: "iconStart",
		IconType:     "default",
	},
	domain.ActionTimerOn: {
		Title:        "Turned On",
		Description:  "turned on",
		IconTemplate: "iconStart",
		IconType:     "default",
	},
	domain.ActionTimerOff: {
		Title:        "Turned Off",
		Description:  "turned off",
		IconTemplate: "iconStop",
		IconType:     "default",
	},
	domain.ActionReset: {
		Title:        "Reset",
		Description:  "reset",
		IconTemplate: "iconReset",
		IconType:     "default",
	},
}

// errorDetail is returned for any action outside the recognized set. It is a
// defined fallback for display purposes, not a failure signal.
var errorDetail = DisplayDetail{
	Title:        "Error",
	Description:  "did this one weird trick",
	IconTemplate: "iconError",
	IconType:     "default",
}

// StatusDetails returns the display tuple for a history record's action.
// Total over all inputs: unrecognized actions get the error tuple.
func StatusDetails(action domain.HistoryAction) DisplayDetail {
	if d, ok := statusDetails[action]; ok {
		return d
	}
	return errorDetail
}
