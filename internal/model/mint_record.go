package model

const (
	MintStatusSuccess = "success"
	MintStatusFailed  = "failed"
)

// MintRecord tracks one attempt to mint a result as an NFT.
type MintRecord struct {
	UUIDBase
	SessionID       string `gorm:"index;type:varchar(36)" json:"sessionId"`
	ResultID        string `gorm:"index;type:varchar(36)" json:"resultId"`
	WalletAddress   string `gorm:"size:42;index" json:"walletAddress"`
	ArchetypeID     string `gorm:"size:80" json:"archetypeId"`
	ChainID         int64  `json:"chainId"`
	Status          string `gorm:"size:20;default:'failed'" json:"status"`
	TransactionHash string `gorm:"size:66" json:"transactionHash,omitempty"`
	TokenID         string `gorm:"size:80" json:"tokenId,omitempty"`
	ImageURL        string `gorm:"size:255" json:"imageUrl,omitempty"`
	Error           string `gorm:"type:text" json:"error,omitempty"`
}

func (MintRecord) TableName() string {
	return "nft_mint_records"
}
