package domain

import (
	interfaces "containment/internal/domain/interfaces"
	types "containment/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ReportID    = types.ReportID
	Fingerprint = types.Fingerprint
	Strategy    = types.Strategy
	Mote        = types.Mote
	Device      = types.Device
	Problem     = types.Problem
	VolumeIndex = types.VolumeIndex
	Assignment  = types.Assignment
	Result      = types.Result
	Report      = types.Report
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ContainmentService = interfaces.ContainmentService
	RunService         = interfaces.RunService
	RunOptions         = interfaces.RunOptions
	ReportStore        = interfaces.ReportStore
	RemoteClient       = interfaces.RemoteClient
)

const (
	StrategyLinear  = types.StrategyLinear
	StrategyIndexed = types.StrategyIndexed
)

// ParseStrategy is re-exported from the types subpackage.
var ParseStrategy = types.ParseStrategy
