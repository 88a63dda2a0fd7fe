package model

import "time"

// UserRef is the abbreviated user embedded in loans, deposits, and
// repayments.
type UserRef struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	ID    int64  `json:"id"`
}

// Profile is the member's full profile.
type Profile struct {
	CreatedAt      time.Time `json:"created_at"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	AlternatePhone string    `json:"alternate_phone"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	Pincode        string    `json:"pincode"`
	Role           string    `json:"role"`
	ID             int64     `json:"id"`
	Activated      bool      `json:"activated"`
}

// KycStatus reports the verification state of each submitted proof.
type KycStatus struct {
	IDProofStatus      string `json:"id_proof_status"`
	AddressProofStatus string `json:"address_proof_status"`
	SelfieStatus       string `json:"selfie_status"`
	Remark             string `json:"remark"`
	Verified           bool   `json:"verified"`
}

// Referral is a member referred by the current user.
type Referral struct {
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	ID        int64     `json:"id"`
}
