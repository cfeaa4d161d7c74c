package domain

type BannerType string

const (
	BannerTypeTopBar         BannerType = "top-bar"
	BannerTypeFloatingBanner BannerType = "floating-banner"
	BannerTypeCornerRibbon   BannerType = "corner-ribbon"
)

type BannerPosition string

const (
	BannerPositionTop    BannerPosition = "top"
	BannerPositionBottom BannerPosition = "bottom"
	BannerPositionCorner BannerPosition = "corner"
)

type BannerAnimation string

const (
	BannerAnimationSlide  BannerAnimation = "slide"
	BannerAnimationFade   BannerAnimation = "fade"
	BannerAnimationBounce BannerAnimation = "bounce"
	BannerAnimationPulse  BannerAnimation = "pulse"
)

// Banner is a strip or ribbon shown on top of the page.
// Duration is how long it stays visible, in milliseconds.
type Banner struct {
	ID              string          `json:"id"`
	Type            BannerType      `json:"type"`
	Title           string          `json:"title"`
	Message         string          `json:"message"`
	CTAText         string          `json:"ctaText"`
	CTAURL          string          `json:"ctaUrl"`
	BackgroundColor string          `json:"backgroundColor"`
	TextColor       string          `json:"textColor"`
	Icon            string          `json:"icon"`
	Duration        int             `json:"duration"`
	Position        BannerPosition  `json:"position"`
	Animation       BannerAnimation `json:"animation"`
	IsActive        bool            `json:"isActive"`
	Priority        int             `json:"priority"`
}
