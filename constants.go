package main

import "image/color"

// Control rates, per second of held key
const (
	heightRate = 90.0  // m/s
	speedRate  = 140.0 // (m/s)/s
	angleRate  = 30.0  // deg/s
	simStep    = 0.5
)

// Mouse interaction
const (
	cornerGrabRadius = 12.0 // pixels
	slingGrabRadius  = 24.0 // pixels
	slingshotGain    = 2.0  // launch m/s per world meter of pull
)

// Layout constants
const (
	plotMarginLeft    = 90.0
	plotMarginRight   = 40.0
	plotMarginTop     = 150.0
	plotMarginBottom  = 80.0
	hudX              = 16
	hudY              = 22
	hudLineHeight     = 18
	buttonWidth       = 120.0
	buttonHeight      = 30.0
	buttonGap         = 10.0
	axisTickCount     = 8
	maxTrailSegments  = 600
	windowedSizeRatio = 0.9
)

// Color constants
var (
	colorBackground   = color.NRGBA{R: 10, G: 14, B: 24, A: 255}
	colorPlot         = color.NRGBA{R: 16, G: 22, B: 38, A: 255}
	colorGrid         = color.NRGBA{R: 34, G: 44, B: 70, A: 255}
	colorAxis         = color.NRGBA{R: 140, G: 150, B: 170, A: 255}
	colorGround       = color.NRGBA{R: 96, G: 160, B: 80, A: 255}
	colorTarget       = color.NRGBA{R: 255, G: 196, B: 60, A: 200}
	colorTargetLocked = color.NRGBA{R: 140, G: 110, B: 50, A: 160}
	colorBarrier      = color.NRGBA{R: 200, G: 60, B: 60, A: 230}
	colorSurface      = color.NRGBA{R: 110, G: 200, B: 255, A: 255}
	colorHandle       = color.NRGBA{R: 230, G: 240, B: 255, A: 255}
	colorPreview      = color.NRGBA{R: 150, G: 150, B: 190, A: 180}
	colorTrail        = color.NRGBA{R: 255, G: 120, B: 60, A: 255}
	colorProjectile   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	colorLauncher     = color.NRGBA{R: 120, G: 255, B: 160, A: 255}
	colorSling        = color.NRGBA{R: 180, G: 140, B: 100, A: 255}
	colorText         = color.NRGBA{R: 220, G: 224, B: 235, A: 255}
	colorTextDim      = color.NRGBA{R: 140, G: 146, B: 165, A: 255}
	colorSuccess      = color.NRGBA{R: 120, G: 255, B: 140, A: 255}
	colorFailure      = color.NRGBA{R: 255, G: 110, B: 110, A: 255}
	colorButton       = color.NRGBA{R: 40, G: 52, B: 84, A: 255}
	colorButtonHover  = color.NRGBA{R: 60, G: 78, B: 124, A: 255}
)
