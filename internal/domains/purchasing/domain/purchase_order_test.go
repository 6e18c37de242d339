package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPurchaseOrder_StartsInDraft(t *testing.T) {
	po, err := NewPurchaseOrder("po-1", "PO-1001", "Initech", 1200.50, "USD")
	require.NoError(t, err)
	require.Equal(t, StatusDraft, po.Status)
	require.Equal(t, "Initech", po.Vendor)
}

func TestNewPurchaseOrder_RequiresVendor(t *testing.T) {
	_, err := NewPurchaseOrder("po-1", "", "  ", 10, "USD")
	require.ErrorIs(t, err, ErrEmptyVendor)
}

func TestNewPurchaseOrder_RejectsNegativeAmount(t *testing.T) {
	_, err := NewPurchaseOrder("po-1", "", "Initech", -1, "USD")
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestSubmit_AdvancesToPendingApproval(t *testing.T) {
	po, err := NewPurchaseOrder("po-1", "", "Initech", 10, "USD")
	require.NoError(t, err)

	event, err := po.Submit("ready for review")
	require.NoError(t, err)
	require.Equal(t, StatusPendingApproval, po.Status)
	require.Equal(t, "ready for review", po.Notes)
	require.Equal(t, EventSubmitted, event.Type)
	require.Equal(t, "po-1", event.PurchaseOrderID)
}

func TestSubmit_BlankNotesKeepExisting(t *testing.T) {
	po, err := NewPurchaseOrder("po-1", "", "Initech", 10, "USD")
	require.NoError(t, err)
	po.Notes = "original"

	_, err = po.Submit("   ")
	require.NoError(t, err)
	require.Equal(t, "original", po.Notes)
}

func TestSubmit_RejectsNonDraft(t *testing.T) {
	po, err := NewPurchaseOrder("po-1", "", "Initech", 10, "USD")
	require.NoError(t, err)
	_, err = po.Submit("")
	require.NoError(t, err)

	_, err = po.Submit("")
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "only DRAFT purchase orders can be submitted", invalid.Reason)
	require.Equal(t, StatusPendingApproval, po.Status)
}

func TestApprove_AdvancesToApproved(t *testing.T) {
	po, err := NewPurchaseOrder("po-1", "", "Initech", 10, "USD")
	require.NoError(t, err)
	_, err = po.Submit("")
	require.NoError(t, err)

	event, err := po.Approve("looks good")
	require.NoError(t, err)
	require.Equal(t, StatusApproved, po.Status)
	require.Equal(t, EventApproved, event.Type)
}

func TestApprove_RejectsDraft(t *testing.T) {
	po, err := NewPurchaseOrder("po-1", "", "Initech", 10, "USD")
	require.NoError(t, err)

	_, err = po.Approve("")
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "only PENDING_APPROVAL purchase orders can be approved", invalid.Reason)
	require.Equal(t, StatusDraft, po.Status)
}

func TestApprove_RejectsApproved(t *testing.T) {
	po, err := NewPurchaseOrder("po-1", "", "Initech", 10, "USD")
	require.NoError(t, err)
	_, err = po.Submit("")
	require.NoError(t, err)
	_, err = po.Approve("")
	require.NoError(t, err)

	_, err = po.Approve("")
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, StatusApproved, po.Status)
}
