package models

// EquipmentStatus is the lifecycle state of a piece of equipment
type EquipmentStatus string

const (
	EquipmentStatusAvailable EquipmentStatus = "available"
	EquipmentStatusAssigned  EquipmentStatus = "assigned"
	EquipmentStatusInRepair  EquipmentStatus = "in_repair"
	EquipmentStatusRetired   EquipmentStatus = "retired"
)

// HistoryState describes how an assignment interval ended, or that it is still running
type HistoryState string

const (
	HistoryStateActive      HistoryState = "active"
	HistoryStateReturned    HistoryState = "returned"
	HistoryStateTransferred HistoryState = "transferred"
)

// AssignMode selects between a first assignment and a transfer
type AssignMode string

const (
	AssignModeAssign   AssignMode = "assign"
	AssignModeTransfer AssignMode = "transfer"
)

// ReturnCondition is the condition reported when equipment comes back
type ReturnCondition string

const (
	ReturnConditionGood    ReturnCondition = "good"
	ReturnConditionDamaged ReturnCondition = "damaged"
	ReturnConditionLost    ReturnCondition = "lost"
)

// IsValid checks if the EquipmentStatus is valid
func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentStatusAvailable, EquipmentStatusAssigned, EquipmentStatusInRepair, EquipmentStatusRetired:
		return true
	}
	return false
}

// IsValid checks if the HistoryState is valid
func (s HistoryState) IsValid() bool {
	switch s {
	case HistoryStateActive, HistoryStateReturned, HistoryStateTransferred:
		return true
	}
	return false
}

// IsValid checks if the AssignMode is valid
func (m AssignMode) IsValid() bool {
	switch m {
	case AssignModeAssign, AssignModeTransfer:
		return true
	}
	return false
}

// IsValid checks if the ReturnCondition is valid
func (c ReturnCondition) IsValid() bool {
	switch c {
	case ReturnConditionGood, ReturnConditionDamaged, ReturnConditionLost:
		return true
	}
	return false
}

// ResultingStatus maps a return condition onto the status the equipment ends up in
func (c ReturnCondition) ResultingStatus() EquipmentStatus {
	switch c {
	case ReturnConditionDamaged:
		return EquipmentStatusInRepair
	case ReturnConditionLost:
		return EquipmentStatusRetired
	default:
		return EquipmentStatusAvailable
	}
}
