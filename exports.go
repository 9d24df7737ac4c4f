package vtl

import "github.com/vango-dev/vtl/pkg/query"

// Query API, re-exported from package query.
type (
	BoundQueries = query.BoundQueries
	Query        = query.Query
	QueryOptions = query.Options
	QueryOption  = query.Option
	Matcher      = query.Matcher
	MatchFunc    = query.MatchFunc
	Normalizer   = query.Normalizer
	QueryConfig  = query.Config
	EventFirer   = query.EventFirer
	EventOption  = query.EventOption
	PrettyOption = query.PrettyOption
)

// Built-in queries.
var (
	ByText            = query.Text
	ByRole            = query.Role
	ByTestId          = query.TestId
	ByLabelText       = query.LabelText
	ByPlaceholderText = query.PlaceholderText
	ByAltText         = query.AltText
	ByTitle           = query.Title
	ByDisplayValue    = query.DisplayValue
)

// Query functions.
var (
	GetQueriesForElement = query.GetQueriesForElement
	Within               = query.Within
	Screen               = query.Screen
	NewQuery             = query.NewQuery
	GetBy                = query.GetBy
	GetAllBy             = query.GetAllBy
	QueryBy              = query.QueryBy
	QueryAllBy           = query.QueryAllBy
	FindBy               = query.FindBy
	FindAllBy            = query.FindAllBy
	WaitFor              = query.WaitFor

	WaitForElementToBeRemoved = query.WaitForElementToBeRemoved
)

// Query options.
var (
	Exact             = query.Exact
	WithNormalizer    = query.WithNormalizer
	DefaultNormalizer = query.DefaultNormalizer
	Selector          = query.Selector
	Ignore            = query.Ignore
	Name              = query.Name
	Hidden            = query.Hidden
	Timeout           = query.Timeout
	Interval          = query.Interval
	WithContext       = query.WithContext
)

// Events.
var (
	Fire          = query.Fire
	FireEvent     = query.FireEvent
	CreateEvent   = query.CreateEvent
	Bubbles       = query.Bubbles
	Cancelable    = query.Cancelable
	Key           = query.Key
	KeyCode       = query.KeyCode
	Data          = query.Data
	Init          = query.Init
	TargetValue   = query.TargetValue
	TargetChecked = query.TargetChecked
)

// Debugging and configuration.
var (
	PrettyDOM      = query.PrettyDOM
	LogDOM         = query.LogDOM
	WithColors     = query.WithColors
	FilterNode     = query.FilterNode
	AccessibleName = query.AccessibleName
	ImplicitRole   = query.ImplicitRole
	Configure      = query.Configure
	GetConfig      = query.GetConfig
	ResetConfig    = query.ResetConfig
)
