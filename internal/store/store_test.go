package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/feral-file/ff-editions/internal/domain"
	"github.com/feral-file/ff-editions/internal/store/schema"
)

// =============================================================================
// Fixtures
// =============================================================================

// fixtures inserts rows the Store interface does not create (users, posts, arbitrary purchase states)
type fixtures struct {
	t   *testing.T
	db  *gorm.DB
	ids struct {
		users []string
		posts []string
	}
}

func newFixtures(t *testing.T, db *gorm.DB) *fixtures {
	return &fixtures{t: t, db: db}
}

func (f *fixtures) user(wallet string) *schema.User {
	user := schema.User{
		ID:       uuid.NewString(),
		Username: "user-" + uuid.NewString()[:8],
	}
	if wallet != "" {
		user.WalletAddress = &wallet
	}
	require.NoError(f.t, f.db.Create(&user).Error)
	f.ids.users = append(f.ids.users, user.ID)
	return &user
}

func (f *fixtures) verifiedWallet(userID, address string) {
	now := time.Now()
	require.NoError(f.t, f.db.Create(&schema.UserWallet{
		UserID:     userID,
		Address:    address,
		VerifiedAt: &now,
	}).Error)
}

func (f *fixtures) edition(ownerID string, maxSupply *int64, currentSupply int64) *schema.Post {
	post := schema.Post{
		ID:            uuid.NewString(),
		UserID:        ownerID,
		Type:          domain.PostTypeEdition,
		Price:         1_000_000_000,
		Currency:      domain.CurrencySOL,
		MaxSupply:     maxSupply,
		CurrentSupply: currentSupply,
		Caption:       "sunset",
		MediaURL:      "https://cdn.example.com/sunset.jpg",
	}
	require.NoError(f.t, f.db.Create(&post).Error)
	f.ids.posts = append(f.ids.posts, post.ID)
	return &post
}

// purchase inserts a purchase in an arbitrary state, mutate sets the state-specific fields
func (f *fixtures) purchase(userID string, post *schema.Post, status domain.PurchaseStatus, mutate func(p *schema.Purchase)) *schema.Purchase {
	now := time.Now()
	purchase := schema.Purchase{
		ID:                 uuid.NewString(),
		UserID:             userID,
		PostID:             post.ID,
		BuyerWalletAddress: "BuyerWa11et1111111111111111111111111111111",
		AmountPaid:         post.Price,
		Currency:           post.Currency,
		Status:             status,
		ReservedAt:         &now,
	}
	if mutate != nil {
		mutate(&purchase)
	}
	require.NoError(f.t, f.db.Create(&purchase).Error)
	return &purchase
}

func (f *fixtures) reloadPost(postID string) *schema.Post {
	var post schema.Post
	require.NoError(f.t, f.db.Where("id = ?", postID).First(&post).Error)
	return &post
}

func (f *fixtures) reloadPurchase(purchaseID string) *schema.Purchase {
	var purchase schema.Purchase
	require.NoError(f.t, f.db.Where("id = ?", purchaseID).First(&purchase).Error)
	return &purchase
}

// purge deletes committed rows created through the fixtures
func (f *fixtures) purge() {
	if len(f.ids.posts) > 0 {
		f.db.Exec("DELETE FROM notifications WHERE post_id IN ?", f.ids.posts)
		f.db.Exec("DELETE FROM minted_metadata WHERE purchase_id IN (SELECT id FROM purchases WHERE post_id IN ?)", f.ids.posts)
		f.db.Exec("DELETE FROM purchases WHERE post_id IN ?", f.ids.posts)
		f.db.Exec("DELETE FROM posts WHERE id IN ?", f.ids.posts)
	}
	if len(f.ids.users) > 0 {
		f.db.Exec("DELETE FROM user_wallets WHERE user_id IN ?", f.ids.users)
		f.db.Exec("DELETE FROM users WHERE id IN ?", f.ids.users)
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func stringPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func buildReserveInput(userID string, post *schema.Post) ReservePurchaseInput {
	return ReservePurchaseInput{
		PurchaseID:         uuid.NewString(),
		UserID:             userID,
		PostID:             post.ID,
		BuyerWalletAddress: "BuyerWa11et1111111111111111111111111111111",
		AmountPaid:         post.Price,
		Currency:           post.Currency,
		ReservedAt:         time.Now(),
	}
}

// =============================================================================
// Test: Users & posts
// =============================================================================

func testGetPostAndUser(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("Creator11111111111111111111111111111111111")
	post := f.edition(owner.ID, int64Ptr(10), 0)

	t.Run("existing post", func(t *testing.T) {
		got, err := store.GetPostByID(ctx, post.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.PostTypeEdition, got.Type)
		assert.Equal(t, int64(10), *got.MaxSupply)
		assert.False(t, got.HasCollection())
	})

	t.Run("missing post returns nil", func(t *testing.T) {
		got, err := store.GetPostByID(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("existing user", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, owner.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Creator11111111111111111111111111111111111", got.Wallet())
	})

	t.Run("missing user returns nil", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testIsWalletVerifiedForUser(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	user := f.user("")
	other := f.user("")
	f.verifiedWallet(user.ID, "Linked111111111111111111111111111111111111")
	require.NoError(t, f.db.Create(&schema.UserWallet{
		UserID:  user.ID,
		Address: "Pending11111111111111111111111111111111111",
	}).Error)

	ok, err := store.IsWalletVerifiedForUser(ctx, user.ID, "Linked111111111111111111111111111111111111")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.IsWalletVerifiedForUser(ctx, user.ID, "Pending11111111111111111111111111111111111")
	require.NoError(t, err)
	assert.False(t, ok, "unverified link must not count")

	ok, err = store.IsWalletVerifiedForUser(ctx, other.ID, "Linked111111111111111111111111111111111111")
	require.NoError(t, err)
	assert.False(t, ok, "wallet belongs to another user")
}

func testSetPostMasterMint(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	post := f.edition(owner.ID, nil, 0)

	won, err := store.SetPostMasterMint(ctx, post.ID, "Collection1111111111111111111111111111111")
	require.NoError(t, err)
	assert.True(t, won)

	won, err = store.SetPostMasterMint(ctx, post.ID, "Collection2222222222222222222222222222222")
	require.NoError(t, err)
	assert.False(t, won, "second writer must lose")

	got := f.reloadPost(post.ID)
	assert.Equal(t, "Collection1111111111111111111111111111111", *got.MasterMint)
}

func testSetPostMetadataURI(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	post := f.edition(owner.ID, nil, 0)

	require.NoError(t, store.SetPostMetadataURI(ctx, post.ID, "https://metadata.example.com/a.json"))
	require.NoError(t, store.SetPostMetadataURI(ctx, post.ID, "https://metadata.example.com/b.json"))

	got := f.reloadPost(post.ID)
	assert.Equal(t, "https://metadata.example.com/a.json", *got.MetadataURI)
}

// =============================================================================
// Test: Reservation
// =============================================================================

func testReservePurchase(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")

	t.Run("reserves supply and creates purchase", func(t *testing.T) {
		post := f.edition(owner.ID, int64Ptr(2), 0)

		first, err := store.ReservePurchase(ctx, buildReserveInput(buyer.ID, post))
		require.NoError(t, err)
		assert.Equal(t, domain.PurchaseStatusReserved, first.Status)
		require.NotNil(t, first.EditionNumber)
		assert.Equal(t, int64(1), *first.EditionNumber)

		second, err := store.ReservePurchase(ctx, buildReserveInput(buyer.ID, post))
		require.NoError(t, err)
		assert.Equal(t, int64(2), *second.EditionNumber)

		assert.Equal(t, int64(2), f.reloadPost(post.ID).CurrentSupply)

		stored, err := store.GetPurchaseByID(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, buyer.ID, stored.UserID)
		assert.NotNil(t, stored.ReservedAt)
	})

	t.Run("sold out leaves supply and purchases untouched", func(t *testing.T) {
		post := f.edition(owner.ID, int64Ptr(1), 1)
		input := buildReserveInput(buyer.ID, post)

		purchase, err := store.ReservePurchase(ctx, input)
		assert.ErrorIs(t, err, domain.ErrSoldOut)
		assert.Nil(t, purchase)

		assert.Equal(t, int64(1), f.reloadPost(post.ID).CurrentSupply)

		stored, err := store.GetPurchaseByID(ctx, input.PurchaseID)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("open edition has no cap", func(t *testing.T) {
		post := f.edition(owner.ID, nil, 500)

		purchase, err := store.ReservePurchase(ctx, buildReserveInput(buyer.ID, post))
		require.NoError(t, err)
		require.NotNil(t, purchase.EditionNumber)
		assert.Equal(t, int64(501), f.reloadPost(post.ID).CurrentSupply)
	})

	t.Run("released ordinal is reissued without duplicating a live one", func(t *testing.T) {
		post := f.edition(owner.ID, int64Ptr(3), 0)

		a, err := store.ReservePurchase(ctx, buildReserveInput(buyer.ID, post))
		require.NoError(t, err)
		b, err := store.ReservePurchase(ctx, buildReserveInput(buyer.ID, post))
		require.NoError(t, err)
		assert.Equal(t, int64(1), *a.EditionNumber)
		assert.Equal(t, int64(2), *b.EditionNumber)

		ok, err := store.AbandonPurchase(ctx, a.ID, time.Now())
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(1), f.reloadPost(post.ID).CurrentSupply)

		c, err := store.ReservePurchase(ctx, buildReserveInput(buyer.ID, post))
		require.NoError(t, err)
		require.NotNil(t, c.EditionNumber)
		assert.NotEqual(t, *b.EditionNumber, *c.EditionNumber)
		assert.Equal(t, int64(1), *c.EditionNumber)

		d, err := store.ReservePurchase(ctx, buildReserveInput(buyer.ID, post))
		require.NoError(t, err)
		assert.Equal(t, int64(3), *d.EditionNumber)

		_, err = store.ReservePurchase(ctx, buildReserveInput(buyer.ID, post))
		assert.ErrorIs(t, err, domain.ErrSoldOut)
	})

	t.Run("failed purchase ordinal is reissued", func(t *testing.T) {
		post := f.edition(owner.ID, nil, 0)

		a, err := store.ReservePurchase(ctx, buildReserveInput(buyer.ID, post))
		require.NoError(t, err)
		b, err := store.ReservePurchase(ctx, buildReserveInput(buyer.ID, post))
		require.NoError(t, err)

		ok, err := store.FailPurchase(ctx, FailPurchaseInput{PurchaseID: b.ID, FailedAt: time.Now(), ErrorMessage: "payment failed"})
		require.NoError(t, err)
		require.True(t, ok)

		c, err := store.ReservePurchase(ctx, buildReserveInput(buyer.ID, post))
		require.NoError(t, err)
		assert.NotEqual(t, *a.EditionNumber, *c.EditionNumber)
		assert.Equal(t, *b.EditionNumber, *c.EditionNumber)
	})
}

func testGetLatestPurchase(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")
	post := f.edition(owner.ID, nil, 0)

	got, err := store.GetLatestPurchase(ctx, buyer.ID, post.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	older := f.purchase(buyer.ID, post, domain.PurchaseStatusAbandoned, func(p *schema.Purchase) {
		p.CreatedAt = time.Now().Add(-time.Hour)
	})
	newer := f.purchase(buyer.ID, post, domain.PurchaseStatusReserved, func(p *schema.Purchase) {
		p.CreatedAt = time.Now()
	})

	got, err = store.GetLatestPurchase(ctx, buyer.ID, post.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, newer.ID, got.ID)
	assert.NotEqual(t, older.ID, got.ID)
}

// =============================================================================
// Test: Payment transitions
// =============================================================================

func testSubmitPurchaseSignature(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")
	post := f.edition(owner.ID, nil, 1)

	t.Run("reserved becomes submitted", func(t *testing.T) {
		purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusReserved, nil)

		ok, err := store.SubmitPurchaseSignature(ctx, purchase.ID, "sig-submit-1", time.Now())
		require.NoError(t, err)
		assert.True(t, ok)

		got := f.reloadPurchase(purchase.ID)
		assert.Equal(t, domain.PurchaseStatusSubmitted, got.Status)
		assert.Equal(t, "sig-submit-1", *got.TxSignature)
		assert.NotNil(t, got.SubmittedAt)
	})

	t.Run("progressed purchase is not rewound", func(t *testing.T) {
		purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusMinting, func(p *schema.Purchase) {
			p.TxSignature = stringPtr("sig-submit-2")
		})

		ok, err := store.SubmitPurchaseSignature(ctx, purchase.ID, "sig-submit-3", time.Now())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, domain.PurchaseStatusMinting, f.reloadPurchase(purchase.ID).Status)
	})
}

func testPromoteReservedToSubmitted(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")
	post := f.edition(owner.ID, nil, 2)

	drifted := f.purchase(buyer.ID, post, domain.PurchaseStatusReserved, func(p *schema.Purchase) {
		p.TxSignature = stringPtr("sig-drift-1")
	})
	unsigned := f.purchase(buyer.ID, post, domain.PurchaseStatusReserved, nil)

	ok, err := store.PromoteReservedToSubmitted(ctx, drifted.ID, time.Now())
	require.NoError(t, err)
	assert.True(t, ok)
	got := f.reloadPurchase(drifted.ID)
	assert.Equal(t, domain.PurchaseStatusSubmitted, got.Status)
	assert.NotNil(t, got.SubmittedAt)

	ok, err = store.PromoteReservedToSubmitted(ctx, drifted.ID, time.Now())
	require.NoError(t, err)
	assert.False(t, ok, "already submitted")

	ok, err = store.PromoteReservedToSubmitted(ctx, unsigned.ID, time.Now())
	require.NoError(t, err)
	assert.False(t, ok, "no signature to promote")
}

func testMarkPaymentConfirmed(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")
	post := f.edition(owner.ID, nil, 2)

	submitted := f.purchase(buyer.ID, post, domain.PurchaseStatusSubmitted, func(p *schema.Purchase) {
		p.TxSignature = stringPtr("sig-confirm-1")
	})
	minting := f.purchase(buyer.ID, post, domain.PurchaseStatusMinting, func(p *schema.Purchase) {
		p.TxSignature = stringPtr("sig-confirm-2")
	})

	ok, err := store.MarkPaymentConfirmed(ctx, submitted.ID, time.Now())
	require.NoError(t, err)
	assert.True(t, ok)
	got := f.reloadPurchase(submitted.ID)
	assert.Equal(t, domain.PurchaseStatusAwaitingFulfillment, got.Status)
	assert.NotNil(t, got.PaymentConfirmedAt)

	ok, err = store.MarkPaymentConfirmed(ctx, minting.ID, time.Now())
	require.NoError(t, err)
	assert.False(t, ok, "a concurrent fulfillment must not be overwritten")
	assert.Equal(t, domain.PurchaseStatusMinting, f.reloadPurchase(minting.ID).Status)
}

// =============================================================================
// Test: Supply release
// =============================================================================

func testAbandonPurchase(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")

	t.Run("unsigned reservation is abandoned once", func(t *testing.T) {
		post := f.edition(owner.ID, int64Ptr(5), 1)
		purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusReserved, nil)

		ok, err := store.AbandonPurchase(ctx, purchase.ID, time.Now())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, domain.PurchaseStatusAbandoned, f.reloadPurchase(purchase.ID).Status)
		assert.Equal(t, int64(0), f.reloadPost(post.ID).CurrentSupply)

		ok, err = store.AbandonPurchase(ctx, purchase.ID, time.Now())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, int64(0), f.reloadPost(post.ID).CurrentSupply)
	})

	t.Run("signed reservation is not abandoned", func(t *testing.T) {
		post := f.edition(owner.ID, int64Ptr(5), 1)
		purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusReserved, func(p *schema.Purchase) {
			p.TxSignature = stringPtr("sig-abandon-1")
		})

		ok, err := store.AbandonPurchase(ctx, purchase.ID, time.Now())
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, int64(1), f.reloadPost(post.ID).CurrentSupply)
	})

	t.Run("release never drives supply below zero", func(t *testing.T) {
		post := f.edition(owner.ID, int64Ptr(5), 0)
		purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusReserved, nil)

		ok, err := store.AbandonPurchase(ctx, purchase.ID, time.Now())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(0), f.reloadPost(post.ID).CurrentSupply)
	})
}

func testFailPurchase(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")

	t.Run("fails and releases supply", func(t *testing.T) {
		post := f.edition(owner.ID, int64Ptr(3), 2)
		purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusSubmitted, func(p *schema.Purchase) {
			p.TxSignature = stringPtr("sig-fail-1")
		})

		ok, err := store.FailPurchase(ctx, FailPurchaseInput{
			PurchaseID:   purchase.ID,
			ErrorMessage: "payment transaction failed",
			FailedAt:     time.Now(),
		})
		require.NoError(t, err)
		assert.True(t, ok)

		got := f.reloadPurchase(purchase.ID)
		assert.Equal(t, domain.PurchaseStatusFailed, got.Status)
		assert.NotNil(t, got.FailedAt)
		assert.Equal(t, "payment transaction failed", *got.ErrorMessage)
		assert.Equal(t, int64(1), f.reloadPost(post.ID).CurrentSupply)

		ok, err = store.FailPurchase(ctx, FailPurchaseInput{PurchaseID: purchase.ID, FailedAt: time.Now()})
		require.NoError(t, err)
		assert.False(t, ok, "terminal purchase cannot fail twice")
		assert.Equal(t, int64(1), f.reloadPost(post.ID).CurrentSupply)
	})

	t.Run("claim holder guard", func(t *testing.T) {
		post := f.edition(owner.ID, int64Ptr(3), 1)
		purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusMinting, func(p *schema.Purchase) {
			p.FulfillmentKey = stringPtr("current-key")
			p.FulfillmentClaimedAt = timePtr(time.Now())
		})

		ok, err := store.FailPurchase(ctx, FailPurchaseInput{
			PurchaseID:     purchase.ID,
			FulfillmentKey: stringPtr("old-key"),
			FailedAt:       time.Now(),
		})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, int64(1), f.reloadPost(post.ID).CurrentSupply)

		ok, err = store.FailPurchase(ctx, FailPurchaseInput{
			PurchaseID:     purchase.ID,
			FulfillmentKey: stringPtr("current-key"),
			FailedAt:       time.Now(),
		})
		require.NoError(t, err)
		assert.True(t, ok)

		got := f.reloadPurchase(purchase.ID)
		assert.Nil(t, got.FulfillmentKey)
		assert.Nil(t, got.FulfillmentClaimedAt)
		assert.Equal(t, int64(0), f.reloadPost(post.ID).CurrentSupply)
	})

	t.Run("confirmed purchase cannot fail", func(t *testing.T) {
		post := f.edition(owner.ID, int64Ptr(3), 1)
		purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusConfirmed, func(p *schema.Purchase) {
			p.NFTMint = stringPtr("Edition11111111111111111111111111111111111")
		})

		ok, err := store.FailPurchase(ctx, FailPurchaseInput{PurchaseID: purchase.ID, FailedAt: time.Now()})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, int64(1), f.reloadPost(post.ID).CurrentSupply)
	})
}

// =============================================================================
// Test: Fulfillment claim
// =============================================================================

func testClaimFulfillment(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")
	post := f.edition(owner.ID, nil, 5)
	now := time.Now()
	staleBefore := now.Add(-domain.DEFAULT_STALE_THRESHOLD)

	claim := func(purchaseID, key string) bool {
		ok, err := store.ClaimFulfillment(ctx, ClaimFulfillmentInput{
			PurchaseID:     purchaseID,
			FulfillmentKey: key,
			ClaimedAt:      now,
			StaleBefore:    staleBefore,
		})
		require.NoError(t, err)
		return ok
	}

	t.Run("awaiting fulfillment is claimed once", func(t *testing.T) {
		purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusAwaitingFulfillment, nil)

		assert.True(t, claim(purchase.ID, "key-a"))
		assert.False(t, claim(purchase.ID, "key-b"), "fresh claim is exclusive")

		got := f.reloadPurchase(purchase.ID)
		assert.Equal(t, domain.PurchaseStatusMinting, got.Status)
		assert.Equal(t, "key-a", *got.FulfillmentKey)
		assert.NotNil(t, got.FulfillmentClaimedAt)
		assert.NotNil(t, got.MintingStartedAt)
	})

	t.Run("master created is claimable", func(t *testing.T) {
		purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusMasterCreated, nil)
		assert.True(t, claim(purchase.ID, "key-c"))
	})

	t.Run("stale minting claim is reclaimed", func(t *testing.T) {
		purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusMinting, func(p *schema.Purchase) {
			p.FulfillmentKey = stringPtr("crashed")
			p.FulfillmentClaimedAt = timePtr(now.Add(-3 * time.Minute))
			p.MintingStartedAt = timePtr(now.Add(-3 * time.Minute))
		})

		assert.True(t, claim(purchase.ID, "key-d"))
		assert.Equal(t, "key-d", *f.reloadPurchase(purchase.ID).FulfillmentKey)
	})

	t.Run("fresh minting claim is not reclaimed", func(t *testing.T) {
		purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusMinting, func(p *schema.Purchase) {
			p.FulfillmentKey = stringPtr("working")
			p.FulfillmentClaimedAt = timePtr(now.Add(-30 * time.Second))
		})

		assert.False(t, claim(purchase.ID, "key-e"))
	})

	t.Run("confirmed without mint is claimable", func(t *testing.T) {
		purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusConfirmed, nil)
		assert.True(t, claim(purchase.ID, "key-f"))
	})

	t.Run("confirmed with mint is not claimable", func(t *testing.T) {
		purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusConfirmed, func(p *schema.Purchase) {
			p.NFTMint = stringPtr("Edition22222222222222222222222222222222222")
		})
		assert.False(t, claim(purchase.ID, "key-g"))
	})

	t.Run("terminal purchases are not claimable", func(t *testing.T) {
		for _, status := range []domain.PurchaseStatus{
			domain.PurchaseStatusFailed,
			domain.PurchaseStatusAbandoned,
			domain.PurchaseStatusReserved,
			domain.PurchaseStatusSubmitted,
		} {
			purchase := f.purchase(buyer.ID, post, status, nil)
			assert.False(t, claim(purchase.ID, "key-h"), status)
		}
	})
}

func testReleaseClaim(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")
	post := f.edition(owner.ID, nil, 1)
	purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusMinting, func(p *schema.Purchase) {
		p.FulfillmentKey = stringPtr("holder")
		p.FulfillmentClaimedAt = timePtr(time.Now())
	})

	ok, err := store.ReleaseClaim(ctx, ReleaseClaimInput{
		PurchaseID:     purchase.ID,
		FulfillmentKey: "someone-else",
		RetryStatus:    domain.PurchaseStatusAwaitingFulfillment,
	})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.ReleaseClaim(ctx, ReleaseClaimInput{
		PurchaseID:     purchase.ID,
		FulfillmentKey: "holder",
		RetryStatus:    domain.PurchaseStatusAwaitingFulfillment,
		ErrorMessage:   "block height exceeded",
	})
	require.NoError(t, err)
	assert.True(t, ok)

	got := f.reloadPurchase(purchase.ID)
	assert.Equal(t, domain.PurchaseStatusAwaitingFulfillment, got.Status)
	assert.Nil(t, got.FulfillmentKey)
	assert.Nil(t, got.FulfillmentClaimedAt)
	assert.Equal(t, "block height exceeded", *got.ErrorMessage)
}

func testMarkMasterCreated(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")
	post := f.edition(owner.ID, nil, 1)
	purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusMinting, func(p *schema.Purchase) {
		p.FulfillmentKey = stringPtr("holder")
		p.FulfillmentClaimedAt = timePtr(time.Now())
	})

	ok, err := store.MarkMasterCreated(ctx, purchase.ID, "intruder", "master-sig")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.MarkMasterCreated(ctx, purchase.ID, "holder", "master-sig")
	require.NoError(t, err)
	assert.True(t, ok)

	got := f.reloadPurchase(purchase.ID)
	assert.Equal(t, domain.PurchaseStatusMasterCreated, got.Status)
	assert.Equal(t, "master-sig", *got.MasterTxSignature)
	assert.Equal(t, "holder", *got.FulfillmentKey, "claim is retained")
}

func testConfirmPurchaseMint(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")
	post := f.edition(owner.ID, nil, 1)
	purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusMasterCreated, func(p *schema.Purchase) {
		p.FulfillmentKey = stringPtr("holder")
		p.FulfillmentClaimedAt = timePtr(time.Now())
		p.ErrorMessage = stringPtr("timeout")
	})

	ok, err := store.ConfirmPurchaseMint(ctx, ConfirmPurchaseMintInput{
		PurchaseID:       purchase.ID,
		NFTMint:          "Edition33333333333333333333333333333333333",
		PrintTxSignature: "print-sig",
		ConfirmedAt:      time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, ok)

	got := f.reloadPurchase(purchase.ID)
	assert.Equal(t, domain.PurchaseStatusConfirmed, got.Status)
	assert.Equal(t, "Edition33333333333333333333333333333333333", *got.NFTMint)
	assert.Equal(t, "print-sig", *got.PrintTxSignature)
	assert.NotNil(t, got.MintConfirmedAt)
	assert.Nil(t, got.FulfillmentKey)
	assert.Nil(t, got.ErrorMessage)

	ok, err = store.ConfirmPurchaseMint(ctx, ConfirmPurchaseMintInput{
		PurchaseID:       purchase.ID,
		NFTMint:          "Edition44444444444444444444444444444444444",
		PrintTxSignature: "print-sig-2",
		ConfirmedAt:      time.Now(),
	})
	require.NoError(t, err)
	assert.False(t, ok, "mint address is written once")
	assert.Equal(t, "Edition33333333333333333333333333333333333", *f.reloadPurchase(purchase.ID).NFTMint)
}

// =============================================================================
// Test: Recovery
// =============================================================================

func testRecoverStaleMinting(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")
	post := f.edition(owner.ID, nil, 2)
	now := time.Now()

	stale := f.purchase(buyer.ID, post, domain.PurchaseStatusMinting, func(p *schema.Purchase) {
		p.FulfillmentKey = stringPtr("crashed")
		p.FulfillmentClaimedAt = timePtr(now.Add(-3 * time.Minute))
		p.MintingStartedAt = timePtr(now.Add(-3 * time.Minute))
	})
	fresh := f.purchase(buyer.ID, post, domain.PurchaseStatusMinting, func(p *schema.Purchase) {
		p.FulfillmentKey = stringPtr("working")
		p.FulfillmentClaimedAt = timePtr(now)
		p.MintingStartedAt = timePtr(now)
	})

	listed, err := store.GetStaleMinting(ctx, now.Add(-domain.DEFAULT_STALE_THRESHOLD), 10)
	require.NoError(t, err)
	ids := make([]string, 0, len(listed))
	for _, p := range listed {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, stale.ID)
	assert.NotContains(t, ids, fresh.ID)

	input := RecoverStaleMintingInput{
		RetryStatus: domain.PurchaseStatusAwaitingFulfillment,
		StaleBefore: now.Add(-domain.DEFAULT_STALE_THRESHOLD),
	}

	input.PurchaseID = fresh.ID
	ok, err := store.RecoverStaleMinting(ctx, input)
	require.NoError(t, err)
	assert.False(t, ok)

	input.PurchaseID = stale.ID
	ok, err = store.RecoverStaleMinting(ctx, input)
	require.NoError(t, err)
	assert.True(t, ok)

	got := f.reloadPurchase(stale.ID)
	assert.Equal(t, domain.PurchaseStatusAwaitingFulfillment, got.Status)
	assert.Nil(t, got.FulfillmentKey)
	assert.Nil(t, got.FulfillmentClaimedAt)
}

func testRecoverOrphanedConfirmation(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")
	post := f.edition(owner.ID, nil, 2)

	orphan := f.purchase(buyer.ID, post, domain.PurchaseStatusConfirmed, nil)
	done := f.purchase(buyer.ID, post, domain.PurchaseStatusConfirmed, func(p *schema.Purchase) {
		p.NFTMint = stringPtr("Edition55555555555555555555555555555555555")
	})

	ok, err := store.RecoverOrphanedConfirmation(ctx, orphan.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.PurchaseStatusAwaitingFulfillment, f.reloadPurchase(orphan.ID).Status)

	ok, err = store.RecoverOrphanedConfirmation(ctx, done.ID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, domain.PurchaseStatusConfirmed, f.reloadPurchase(done.ID).Status)
}

func testGetStaleReservations(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")
	post := f.edition(owner.ID, nil, 3)
	now := time.Now()

	stale := f.purchase(buyer.ID, post, domain.PurchaseStatusReserved, func(p *schema.Purchase) {
		p.ReservedAt = timePtr(now.Add(-5 * time.Minute))
	})
	signed := f.purchase(buyer.ID, post, domain.PurchaseStatusReserved, func(p *schema.Purchase) {
		p.ReservedAt = timePtr(now.Add(-5 * time.Minute))
		p.TxSignature = stringPtr("sig-stale-1")
	})
	fresh := f.purchase(buyer.ID, post, domain.PurchaseStatusReserved, nil)

	listed, err := store.GetStaleReservations(ctx, now.Add(-domain.DEFAULT_STALE_THRESHOLD), 100)
	require.NoError(t, err)

	ids := make([]string, 0, len(listed))
	for _, p := range listed {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, stale.ID)
	assert.NotContains(t, ids, signed.ID)
	assert.NotContains(t, ids, fresh.ID)
}

// =============================================================================
// Test: Side effects
// =============================================================================

func testSideEffects(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")
	post := f.edition(owner.ID, nil, 1)
	purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusConfirmed, func(p *schema.Purchase) {
		p.NFTMint = stringPtr("Edition66666666666666666666666666666666666")
	})

	t.Run("notification is created once per purchase", func(t *testing.T) {
		input := CreateNotificationInput{
			UserID:     owner.ID,
			ActorID:    buyer.ID,
			Type:       schema.NotificationTypeEditionSold,
			PostID:     &post.ID,
			PurchaseID: &purchase.ID,
		}
		require.NoError(t, store.CreateNotification(ctx, input))
		require.NoError(t, store.CreateNotification(ctx, input))

		var count int64
		require.NoError(t, f.db.Model(&schema.Notification{}).Where("purchase_id = ?", purchase.ID).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("minted metadata snapshot is created once", func(t *testing.T) {
		input := CreateMintedMetadataInput{
			PurchaseID:  purchase.ID,
			NFTMint:     *purchase.NFTMint,
			MetadataURI: "https://metadata.example.com/a.json",
			Metadata:    []byte(`{"name":"sunset #1"}`),
		}
		require.NoError(t, store.CreateMintedMetadata(ctx, input))
		require.NoError(t, store.CreateMintedMetadata(ctx, input))

		var snapshot schema.MintedMetadata
		require.NoError(t, f.db.Where("purchase_id = ?", purchase.ID).First(&snapshot).Error)
		assert.JSONEq(t, `{"name":"sunset #1"}`, string(snapshot.Metadata))
	})
}

// =============================================================================
// Test: Concurrency (committed data)
// =============================================================================

func testConcurrentReservation(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	post := f.edition(owner.ID, int64Ptr(1), 0)
	buyers := []*schema.User{f.user(""), f.user("")}

	var wg sync.WaitGroup
	results := make([]error, len(buyers))
	for i, buyer := range buyers {
		wg.Add(1)
		go func(i int, buyer *schema.User) {
			defer wg.Done()
			_, results[i] = store.ReservePurchase(ctx, buildReserveInput(buyer.ID, post))
		}(i, buyer)
	}
	wg.Wait()

	succeeded, soldOut := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, domain.ErrSoldOut):
			soldOut++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, soldOut)
	assert.Equal(t, int64(1), f.reloadPost(post.ID).CurrentSupply)
}

func testSupplyConservation(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	post := f.edition(owner.ID, int64Ptr(5), 0)
	buyer := f.user("")

	const attempts = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	var reserved []*schema.Purchase
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			purchase, err := store.ReservePurchase(ctx, buildReserveInput(buyer.ID, post))
			if err != nil {
				assert.ErrorIs(t, err, domain.ErrSoldOut)
				return
			}
			mu.Lock()
			reserved = append(reserved, purchase)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, reserved, 5)
	assert.Equal(t, int64(5), f.reloadPost(post.ID).CurrentSupply)

	// Abandoning and failing concurrently gives back exactly one unit each
	for i, purchase := range reserved[:2] {
		wg.Add(1)
		go func(i int, purchaseID string) {
			defer wg.Done()
			if i == 0 {
				_, err := store.AbandonPurchase(ctx, purchaseID, time.Now())
				assert.NoError(t, err)
				return
			}
			_, err := store.FailPurchase(ctx, FailPurchaseInput{PurchaseID: purchaseID, FailedAt: time.Now()})
			assert.NoError(t, err)
		}(i, purchase.ID)
	}
	wg.Wait()

	assert.Equal(t, int64(3), f.reloadPost(post.ID).CurrentSupply)
}

func testConcurrentClaim(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	buyer := f.user("")
	post := f.edition(owner.ID, nil, 1)
	purchase := f.purchase(buyer.ID, post, domain.PurchaseStatusAwaitingFulfillment, nil)

	const callers = 10
	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			now := time.Now()
			ok, err := store.ClaimFulfillment(ctx, ClaimFulfillmentInput{
				PurchaseID:     purchase.ID,
				FulfillmentKey: uuid.NewString(),
				ClaimedAt:      now,
				StaleBefore:    now.Add(-domain.DEFAULT_STALE_THRESHOLD),
			})
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, won)
}

func testConcurrentMasterMint(t *testing.T, store Store, f *fixtures) {
	ctx := context.Background()
	owner := f.user("")
	post := f.edition(owner.ID, nil, 0)

	const writers = 5
	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := store.SetPostMasterMint(ctx, post.ID, uuid.NewString())
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.True(t, f.reloadPost(post.ID).HasCollection())
}

// =============================================================================
// Runners
// =============================================================================

// RunStoreTests runs all store tests, each inside its own rolled back transaction
func RunStoreTests(t *testing.T, initDB func(t *testing.T) (Store, *gorm.DB), cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store, *fixtures)
	}{
		{"GetPostAndUser", testGetPostAndUser},
		{"IsWalletVerifiedForUser", testIsWalletVerifiedForUser},
		{"SetPostMasterMint", testSetPostMasterMint},
		{"SetPostMetadataURI", testSetPostMetadataURI},
		{"ReservePurchase", testReservePurchase},
		{"GetLatestPurchase", testGetLatestPurchase},
		{"SubmitPurchaseSignature", testSubmitPurchaseSignature},
		{"PromoteReservedToSubmitted", testPromoteReservedToSubmitted},
		{"MarkPaymentConfirmed", testMarkPaymentConfirmed},
		{"AbandonPurchase", testAbandonPurchase},
		{"FailPurchase", testFailPurchase},
		{"ClaimFulfillment", testClaimFulfillment},
		{"ReleaseClaim", testReleaseClaim},
		{"MarkMasterCreated", testMarkMasterCreated},
		{"ConfirmPurchaseMint", testConfirmPurchaseMint},
		{"RecoverStaleMinting", testRecoverStaleMinting},
		{"RecoverOrphanedConfirmation", testRecoverOrphanedConfirmation},
		{"GetStaleReservations", testGetStaleReservations},
		{"SideEffects", testSideEffects},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, db := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store, newFixtures(t, db))
		})
	}
}

// RunConcurrencyTests runs the race tests; each test commits and purges its own rows
func RunConcurrencyTests(t *testing.T, initDB func(t *testing.T) (Store, *fixtures)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store, *fixtures)
	}{
		{"ConcurrentReservation", testConcurrentReservation},
		{"SupplyConservation", testSupplyConservation},
		{"ConcurrentClaim", testConcurrentClaim},
		{"ConcurrentMasterMint", testConcurrentMasterMint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, f := initDB(t)
			tt.fn(t, store, f)
		})
	}
}
