package services

import (
	"errors"
	"testing"
	"time"

	"github.com/bipan-sh/weight-tracker/models"
)

func TestRequestPartnership(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@example.com")
	bob := createTestUser(t, "Bob", "bob@example.com")

	partnership, err := RequestPartnership(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("RequestPartnership() unexpected error: %v", err)
	}
	if partnership.Status != models.PartnershipPending {
		t.Errorf("RequestPartnership() status = %q, want PENDING", partnership.Status)
	}
	if partnership.UserID != alice.ID || partnership.PartnerID != bob.ID {
		t.Errorf("RequestPartnership() parties = (%d, %d), want (%d, %d)",
			partnership.UserID, partnership.PartnerID, alice.ID, bob.ID)
	}
}

func TestRequestPartnershipSymmetry(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@example.com")
	bob := createTestUser(t, "Bob", "bob@example.com")

	if _, err := RequestPartnership(alice.ID, bob.ID); err != nil {
		t.Fatalf("RequestPartnership() unexpected error: %v", err)
	}

	if _, err := RequestPartnership(alice.ID, bob.ID); !errors.Is(err, ErrPartnershipExists) {
		t.Errorf("repeat request error = %v, want ErrPartnershipExists", err)
	}
	if _, err := RequestPartnership(bob.ID, alice.ID); !errors.Is(err, ErrPartnershipExists) {
		t.Errorf("reverse request error = %v, want ErrPartnershipExists", err)
	}
}

func TestRequestPartnershipInvalidRecipient(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@example.com")

	if _, err := RequestPartnership(alice.ID, alice.ID); !errors.Is(err, ErrSelfPartnership) {
		t.Errorf("self request error = %v, want ErrSelfPartnership", err)
	}
	if _, err := RequestPartnership(alice.ID, 999); !errors.Is(err, ErrPartnerNotFound) {
		t.Errorf("unknown recipient error = %v, want ErrPartnerNotFound", err)
	}
}

func TestAcceptPartnership(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@example.com")
	bob := createTestUser(t, "Bob", "bob@example.com")

	partnership, err := RequestPartnership(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("RequestPartnership() unexpected error: %v", err)
	}

	// The requester cannot accept their own request
	if _, err := AcceptPartnership(partnership.ID, alice.ID); !errors.Is(err, ErrPartnershipNotFound) {
		t.Errorf("AcceptPartnership() by requester error = %v, want ErrPartnershipNotFound", err)
	}

	accepted, err := AcceptPartnership(partnership.ID, bob.ID)
	if err != nil {
		t.Fatalf("AcceptPartnership() by recipient unexpected error: %v", err)
	}
	if accepted.Status != models.PartnershipAccepted {
		t.Errorf("AcceptPartnership() status = %q, want ACCEPTED", accepted.Status)
	}

	// Both sides see the other party
	alicePartners, err := ListPartners(alice.ID)
	if err != nil {
		t.Fatalf("ListPartners(alice) unexpected error: %v", err)
	}
	if len(alicePartners) != 1 || alicePartners[0].PartnerID != bob.ID {
		t.Errorf("ListPartners(alice) = %+v, want bob", alicePartners)
	}

	bobPartners, err := ListPartners(bob.ID)
	if err != nil {
		t.Fatalf("ListPartners(bob) unexpected error: %v", err)
	}
	if len(bobPartners) != 1 || bobPartners[0].PartnerID != alice.ID {
		t.Errorf("ListPartners(bob) = %+v, want alice", bobPartners)
	}
}

func TestRejectPartnership(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@example.com")
	bob := createTestUser(t, "Bob", "bob@example.com")

	partnership, err := RequestPartnership(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("RequestPartnership() unexpected error: %v", err)
	}

	if err := RejectPartnership(partnership.ID, alice.ID); !errors.Is(err, ErrPartnershipNotFound) {
		t.Errorf("RejectPartnership() by requester error = %v, want ErrPartnershipNotFound", err)
	}

	if err := RejectPartnership(partnership.ID, bob.ID); err != nil {
		t.Fatalf("RejectPartnership() by recipient unexpected error: %v", err)
	}

	// Rejection deletes the row, so a fresh request is allowed
	if _, err := RequestPartnership(alice.ID, bob.ID); err != nil {
		t.Errorf("RequestPartnership() after rejection unexpected error: %v", err)
	}
}

func TestRemovePartnership(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@example.com")
	bob := createTestUser(t, "Bob", "bob@example.com")

	partnership, err := RequestPartnership(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("RequestPartnership() unexpected error: %v", err)
	}

	// Remove only applies to accepted partnerships
	if err := RemovePartnership(partnership.ID, alice.ID); !errors.Is(err, ErrPartnershipNotFound) {
		t.Errorf("RemovePartnership() while pending error = %v, want ErrPartnershipNotFound", err)
	}

	if _, err := AcceptPartnership(partnership.ID, bob.ID); err != nil {
		t.Fatalf("AcceptPartnership() unexpected error: %v", err)
	}

	if err := RemovePartnership(partnership.ID, bob.ID); err != nil {
		t.Fatalf("RemovePartnership() unexpected error: %v", err)
	}

	for _, id := range []uint{alice.ID, bob.ID} {
		partners, err := ListPartners(id)
		if err != nil {
			t.Fatalf("ListPartners(%d) unexpected error: %v", id, err)
		}
		if len(partners) != 0 {
			t.Errorf("ListPartners(%d) = %+v after removal, want empty", id, partners)
		}
	}
}

func TestListPendingRequests(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@example.com")
	bob := createTestUser(t, "Bob", "bob@example.com")
	carol := createTestUser(t, "Carol", "carol@example.com")

	if _, err := RequestPartnership(alice.ID, bob.ID); err != nil {
		t.Fatalf("RequestPartnership() unexpected error: %v", err)
	}
	if _, err := RequestPartnership(carol.ID, bob.ID); err != nil {
		t.Fatalf("RequestPartnership() unexpected error: %v", err)
	}

	pending, err := ListPendingRequests(bob.ID)
	if err != nil {
		t.Fatalf("ListPendingRequests() unexpected error: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("ListPendingRequests(bob) returned %d requests, want 2", len(pending))
	}
	for _, req := range pending {
		if req.User.Email == "" {
			t.Errorf("ListPendingRequests() request %d missing requester details", req.ID)
		}
	}

	// The requester has no pending requests awaiting their decision
	pending, err = ListPendingRequests(alice.ID)
	if err != nil {
		t.Fatalf("ListPendingRequests(alice) unexpected error: %v", err)
	}
	if len(pending) != 0 {
		t.Errorf("ListPendingRequests(alice) = %+v, want empty", pending)
	}
}

func TestGetPartnerWeights(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@example.com")
	bob := createTestUser(t, "Bob", "bob@example.com")
	carol := createTestUser(t, "Carol", "carol@example.com")

	if _, err := CreateWeight(bob.ID, 91, time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)); err != nil {
		t.Fatalf("CreateWeight() unexpected error: %v", err)
	}
	if _, err := CreateWeight(bob.ID, 90.4, time.Date(2024, 3, 11, 9, 0, 0, 0, time.Local)); err != nil {
		t.Fatalf("CreateWeight() unexpected error: %v", err)
	}
	if _, err := CreateWeight(carol.ID, 65, time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)); err != nil {
		t.Fatalf("CreateWeight() unexpected error: %v", err)
	}

	partnership, err := RequestPartnership(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("RequestPartnership() unexpected error: %v", err)
	}
	if _, err := AcceptPartnership(partnership.ID, bob.ID); err != nil {
		t.Fatalf("AcceptPartnership() unexpected error: %v", err)
	}

	// Carol's request stays pending; her weights must not appear
	if _, err := RequestPartnership(carol.ID, alice.ID); err != nil {
		t.Fatalf("RequestPartnership() unexpected error: %v", err)
	}

	partnerWeights, err := GetPartnerWeights(alice.ID)
	if err != nil {
		t.Fatalf("GetPartnerWeights() unexpected error: %v", err)
	}
	if len(partnerWeights) != 1 {
		t.Fatalf("GetPartnerWeights() returned %d partners, want 1", len(partnerWeights))
	}

	pw := partnerWeights[0]
	if pw.PartnerID != bob.ID || pw.PartnerName != "Bob" {
		t.Errorf("GetPartnerWeights() partner = %+v, want bob", pw)
	}
	if len(pw.Weights) != 2 {
		t.Fatalf("GetPartnerWeights() returned %d weights, want 2", len(pw.Weights))
	}
	if pw.Weights[0].Value != 90.4 {
		t.Errorf("GetPartnerWeights() newest value = %v, want 90.4", pw.Weights[0].Value)
	}
	if pw.Weights[0].Date != "2024-03-11" {
		t.Errorf("GetPartnerWeights() newest date = %q, want 2024-03-11", pw.Weights[0].Date)
	}
}
