// Package menu provides the domain model for the venue's menu: Category and
// Product. Pricing logic lives elsewhere; products carry a price as plain
// data for display in the QR flow.
package menu
