package relay

// Request and response bodies for the relay HTTP API. Byte fields travel
// as base64 per encoding/json. Every body is parsed into its typed form
// and validated before the store is touched; malformed input is a 400.

type submitRequest struct {
	EncryptedPayload  []byte `json:"encryptedPayload"`
	IV                []byte `json:"iv"`
	EphemeralKey      []byte `json:"ephemeralKey"`
	RecipientID       string `json:"recipientId"`
	MessageID         string `json:"messageId,omitempty"`
	ExpirationMinutes int    `json:"expirationMinutes,omitempty"`
}

type submitResponse struct {
	Success          bool   `json:"success"`
	MessageID        string `json:"messageId"`
	DeliveryEstimate string `json:"deliveryEstimate"`
}

type fetchResponse struct {
	Success          bool   `json:"success"`
	EncryptedPayload []byte `json:"encryptedPayload"`
	IV               []byte `json:"iv"`
	EphemeralKey     []byte `json:"ephemeralKey"`
	Timestamp        int64  `json:"timestamp"`
	ExpiresAt        int64  `json:"expiresAt"`
}

type registerKeyRequest struct {
	PublicKey []byte `json:"publicKey"`
}

type registerKeyResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
}

type fetchKeyResponse struct {
	Success   bool   `json:"success"`
	PublicKey []byte `json:"publicKey"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
