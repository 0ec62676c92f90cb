// Package veil is a terminal UI toolkit: pure widget renderers plus a
// lifecycle manager for transient overlay surfaces (confirmation dialogs
// and toast notifications).
//
// The renderers are stateless functions from a config struct to a styled
// string. The overlay manager owns the process-wide overlay registry and is
// embedded in a host Bubble Tea model; see package overlay.
//
// This package re-exports the public surface of the subpackages so hosts
// can depend on a single import.
package veil

import (
	"github.com/veiltui/veil/overlay"
	"github.com/veiltui/veil/toast"
	"github.com/veiltui/veil/widget"
)

// Overlay manager surface. ShowConfirm, ShowToast, DismissToast,
// OpenModal, and CloseModal are methods on Manager.
type (
	Manager       = overlay.Manager
	Option        = overlay.Option
	ConfirmConfig = overlay.ConfirmConfig
)

// NewManager creates the overlay registry for a host program.
var NewManager = overlay.NewManager

// Manager options.
var (
	WithLogger            = overlay.WithLogger
	WithStyles            = overlay.WithStyles
	WithAnimationDuration = overlay.WithAnimationDuration
)

// Confirmation dialog variants.
const (
	VariantDefault = overlay.VariantDefault
	VariantDanger  = overlay.VariantDanger
	VariantWarning = overlay.VariantWarning
	VariantInfo    = overlay.VariantInfo
)

// Toast types and levels.
type (
	ToastID    = toast.ID
	ToastLevel = toast.Level
)

const (
	ToastInfo    = toast.LevelInfo
	ToastSuccess = toast.LevelSuccess
	ToastWarning = toast.LevelWarning
	ToastError   = toast.LevelError
)

// Renderer collaborator configs.
type (
	ButtonConfig     = widget.ButtonConfig
	InputConfig      = widget.InputConfig
	SelectConfig     = widget.SelectConfig
	PaginationConfig = widget.PaginationConfig
	ModalConfig      = widget.ModalConfig
	CardConfig       = widget.CardConfig
	TableConfig      = widget.TableConfig
	BadgeConfig      = widget.BadgeConfig
	AlertConfig      = widget.AlertConfig
	LoadingConfig    = widget.LoadingConfig
)

// Pure renderers.
var (
	RenderButton     = widget.Button
	RenderInput      = widget.Input
	RenderSelect     = widget.Select
	RenderPagination = widget.Pagination
	RenderModal      = widget.Modal
	RenderCard       = widget.Card
	RenderTable      = widget.Table
	RenderBadge      = widget.Badge
	RenderAlert      = widget.Alert
	RenderLoading    = widget.Loading
)
