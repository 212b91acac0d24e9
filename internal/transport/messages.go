package transport

// CallEnvelope carries the transaction fields shared by state-changing calls.
// Amounts are decimal wei strings; an empty value means zero.
type CallEnvelope struct {
	Caller   string `json:"caller"`
	Value    string `json:"value,omitempty"`
	GasPrice string `json:"gas_price,omitempty"`
}

type CommitRequest struct {
	CallEnvelope
	Commitment string `json:"commitment"`
}

type RevealRequest struct {
	CallEnvelope
	Nonce string `json:"nonce"`
	Name  string `json:"name"`
}

type RenewRequest struct {
	CallEnvelope
	Name string `json:"name"`
}

type UnlockDepositRequest struct {
	CallEnvelope
}

type WithdrawFeesRequest struct {
	CallEnvelope
}

type Event struct {
	Kind      string `json:"kind"`
	Account   string `json:"account"`
	Name      string `json:"name,omitempty"`
	ExpiresAt uint64 `json:"expires_at,omitempty"`
	Amount    string `json:"amount,omitempty"`
}

type Transfer struct {
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// ReceiptResponse describes a committed call.
type ReceiptResponse struct {
	BlockNumber uint64     `json:"block_number"`
	BlockTime   uint64     `json:"block_time"`
	Events      []Event    `json:"events"`
	Transfers   []Transfer `json:"transfers"`
}

type DigestRequest struct {
	Nonce  string `json:"nonce"`
	Name   string `json:"name"`
	Sender string `json:"sender"`
}

type DigestResponse struct {
	Digest string `json:"digest"`
}

type ResolveNameRequest struct {
	Address string `json:"address"`
}

type ResolveNameResponse struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

type QuoteRequest struct {
	Name string `json:"name"`
}

// QuoteResponse is the exact value a reveal of Name must carry.
type QuoteResponse struct {
	Name    string `json:"name"`
	Fee     string `json:"fee"`
	Deposit string `json:"deposit"`
	Total   string `json:"total"`
}

type HeadRequest struct{}

type HeadResponse struct {
	Number uint64 `json:"number"`
	Time   uint64 `json:"time"`
}

// ErrorResponse is the REST body of a failed call.
type ErrorResponse struct {
	Code    int32  `json:"code"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}
