package domain

import "slices"

// PurchaseStatus is the discriminant of the edition purchase state machine
type PurchaseStatus string

const (
	// PurchaseStatusReserved is set when one unit of supply has been reserved for the buyer
	PurchaseStatusReserved PurchaseStatus = "reserved"
	// PurchaseStatusSubmitted is set when the buyer submitted the payment signature
	PurchaseStatusSubmitted PurchaseStatus = "submitted"
	// PurchaseStatusAwaitingFulfillment is set when the payment landed on-chain
	PurchaseStatusAwaitingFulfillment PurchaseStatus = "awaiting_fulfillment"
	// PurchaseStatusMinting is set while a fulfillment claim is held
	PurchaseStatusMinting PurchaseStatus = "minting"
	// PurchaseStatusMasterCreated is set once the post collection exists
	PurchaseStatusMasterCreated PurchaseStatus = "master_created"
	// PurchaseStatusConfirmed is set together with the minted edition address
	PurchaseStatusConfirmed PurchaseStatus = "confirmed"
	// PurchaseStatusFailed is terminal, the reserved supply has been released
	PurchaseStatusFailed PurchaseStatus = "failed"
	// PurchaseStatusAbandoned is terminal, the buyer never signed and the supply has been released
	PurchaseStatusAbandoned PurchaseStatus = "abandoned"
	// PurchaseStatusBlockedMissingMaster marks purchases whose collection cannot be resolved
	PurchaseStatusBlockedMissingMaster PurchaseStatus = "blocked_missing_master"
)

// purchaseTransitions is the legal transition table of the purchase state machine.
//
//	reserved -> submitted -> awaiting_fulfillment -> minting -> master_created -> minting -> confirmed
//	reserved -> abandoned
//	any non-terminal -> failed
//	minting -> master_created | awaiting_fulfillment (stale claim or retryable error)
//	confirmed (without mint) -> awaiting_fulfillment | minting (orphan recovery)
var purchaseTransitions = map[PurchaseStatus][]PurchaseStatus{
	PurchaseStatusReserved: {
		PurchaseStatusSubmitted,
		PurchaseStatusAwaitingFulfillment,
		PurchaseStatusAbandoned,
		PurchaseStatusFailed,
	},
	PurchaseStatusSubmitted: {
		PurchaseStatusAwaitingFulfillment,
		PurchaseStatusFailed,
	},
	PurchaseStatusAwaitingFulfillment: {
		PurchaseStatusMinting,
		PurchaseStatusFailed,
	},
	PurchaseStatusMinting: {
		PurchaseStatusMasterCreated,
		PurchaseStatusAwaitingFulfillment,
		PurchaseStatusConfirmed,
		PurchaseStatusFailed,
	},
	PurchaseStatusMasterCreated: {
		PurchaseStatusMinting,
		PurchaseStatusConfirmed,
		PurchaseStatusFailed,
	},
	PurchaseStatusConfirmed: {
		PurchaseStatusAwaitingFulfillment,
		PurchaseStatusMinting,
	},
	PurchaseStatusFailed:               {},
	PurchaseStatusAbandoned:            {},
	PurchaseStatusBlockedMissingMaster: {},
}

// CanTransition reports whether from -> to is a legal purchase transition
func CanTransition(from, to PurchaseStatus) bool {
	return slices.Contains(purchaseTransitions[from], to)
}

// SourcesFor returns every status that may legally transition into to, in a stable order
func SourcesFor(to PurchaseStatus) []PurchaseStatus {
	var sources []PurchaseStatus
	for _, from := range AllPurchaseStatuses {
		if CanTransition(from, to) {
			sources = append(sources, from)
		}
	}
	return sources
}

// AllPurchaseStatuses lists every purchase status
var AllPurchaseStatuses = []PurchaseStatus{
	PurchaseStatusReserved,
	PurchaseStatusSubmitted,
	PurchaseStatusAwaitingFulfillment,
	PurchaseStatusMinting,
	PurchaseStatusMasterCreated,
	PurchaseStatusConfirmed,
	PurchaseStatusFailed,
	PurchaseStatusAbandoned,
	PurchaseStatusBlockedMissingMaster,
}

// Guard sets used by the conditional updates. Each is a subset of the transition table.
var (
	// PaymentUpgradableStatuses may move to awaiting_fulfillment once the payment lands.
	// minting is excluded so a concurrent fulfillment is never overwritten.
	PaymentUpgradableStatuses = []PurchaseStatus{PurchaseStatusSubmitted, PurchaseStatusReserved}

	// ClaimableStatuses may be claimed while no fresh claim is held
	ClaimableStatuses = []PurchaseStatus{PurchaseStatusAwaitingFulfillment, PurchaseStatusMasterCreated}

	// FulfillableStatuses are delegated to the fulfillment engine by the poller
	FulfillableStatuses = []PurchaseStatus{PurchaseStatusAwaitingFulfillment, PurchaseStatusMasterCreated}

	// MintRecordableStatuses may record a minted edition
	MintRecordableStatuses = []PurchaseStatus{
		PurchaseStatusMinting,
		PurchaseStatusMasterCreated,
		PurchaseStatusAwaitingFulfillment,
		PurchaseStatusConfirmed,
	}
)

// IsValid checks if a purchase status is known
func (s PurchaseStatus) IsValid() bool {
	return slices.Contains(AllPurchaseStatuses, s)
}

// IsTerminal reports whether no further transition is possible
func (s PurchaseStatus) IsTerminal() bool {
	return len(purchaseTransitions[s]) == 0
}

// ReleasesSupply reports whether entering this status gives the reserved unit back
func (s PurchaseStatus) ReleasesSupply() bool {
	return s == PurchaseStatusFailed || s == PurchaseStatusAbandoned
}

// RetryStatus is the status a released fulfillment claim falls back to
func RetryStatus(hasCollection bool) PurchaseStatus {
	if hasCollection {
		return PurchaseStatusMasterCreated
	}
	return PurchaseStatusAwaitingFulfillment
}
