package service

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/nfrund/zawiya/internal/kvstore"
	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/pubsub"
	"github.com/nfrund/zawiya/internal/validate"
)

// MsgSubscribed confirms a newsletter subscription.
const MsgSubscribed = "تم الاشتراك بنجاح! شكراً لك"

const newsletterKey = "newsletter"

// EmailField is the newsletter form's only input.
var EmailField = validate.Field{Name: "email", Label: "البريد الإلكتروني", Kind: validate.KindEmail, Required: true}

// Newsletter keeps the subscriber list in the key/value store.
type Newsletter struct {
	mu        sync.Mutex
	kv        *kvstore.Store
	checker   validate.Checker
	publisher pubsub.Publisher
}

func NewNewsletter(kv *kvstore.Store, checker validate.Checker, pub pubsub.Publisher) *Newsletter {
	return &Newsletter{kv: kv, checker: checker, publisher: pub}
}

// Subscribe validates and records an address. Repeated addresses are stored once.
// The returned Result carries the inline error for an invalid address.
func (n *Newsletter) Subscribe(ctx context.Context, address string) (validate.Result, bool) {
	f := EmailField
	f.Value = address
	if res := n.checker.Check(f); !res.Valid {
		return res, false
	}
	address = strings.ToLower(strings.TrimSpace(address))

	n.mu.Lock()
	var list []string
	n.kv.Load(newsletterKey, &list)
	if !slices.Contains(list, address) {
		list = append(list, address)
	}
	ok := n.kv.Save(newsletterKey, list)
	n.mu.Unlock()

	if ok && n.publisher != nil {
		if err := pubsub.Publish(ctx, n.publisher, NewsletterJoinedTopic, address, NewsletterJoined{Email: address, At: time.Now()}); err != nil {
			middleware.FromContext(ctx).Warn("Failed to publish newsletter event", "error", err)
		}
	}
	return validate.Result{Valid: true}, ok
}

// Subscribers returns the stored addresses.
func (n *Newsletter) Subscribers() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var list []string
	n.kv.Load(newsletterKey, &list)
	return list
}
