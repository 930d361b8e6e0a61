package main

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type CatalogServiceProvider interface {
	GetOne(ctx context.Context, id string) (Book, error)
	GetAll(ctx context.Context) ([]Book, error)
	GetFeatured(ctx context.Context) ([]Book, error)
	Filter(ctx context.Context, query CatalogQuery) ([]Book, error)
	Genres(ctx context.Context) ([]string, error)
	Reviews(ctx context.Context, bookID string) ([]Review, error)
}

// CatalogService fronts the catalog storage and adds the simulated
// fetch latency the storefront uses for its loading states. The delay
// runs under the request context, so a gone caller cancels the read
// instead of leaving a timer behind.
type CatalogService struct {
	logger  *zap.Logger
	config  *Config
	storage CatalogStorage
}

func NewCatalogService(logger *zap.Logger, config *Config, storage CatalogStorage) CatalogServiceProvider {
	return &CatalogService{
		logger:  logger,
		config:  config,
		storage: storage,
	}
}

func (cs *CatalogService) browse(ctx context.Context) error {
	return SleepContext(ctx, cs.config.Store.BrowseDelay)
}

func (cs *CatalogService) GetOne(ctx context.Context, id string) (Book, error) {
	if err := cs.browse(ctx); err != nil {
		return Book{}, err
	}
	return cs.storage.GetOne(ctx, id)
}

func (cs *CatalogService) GetAll(ctx context.Context) ([]Book, error) {
	if err := cs.browse(ctx); err != nil {
		return nil, err
	}
	return cs.storage.GetAll(ctx)
}

func (cs *CatalogService) GetFeatured(ctx context.Context) ([]Book, error) {
	if err := cs.browse(ctx); err != nil {
		return nil, err
	}
	return cs.storage.GetFeatured(ctx)
}

func (cs *CatalogService) Filter(ctx context.Context, query CatalogQuery) ([]Book, error) {
	if err := cs.browse(ctx); err != nil {
		return nil, err
	}
	return cs.storage.Filter(ctx, query)
}

func (cs *CatalogService) Genres(ctx context.Context) ([]string, error) {
	return cs.storage.Genres(ctx)
}

func (cs *CatalogService) Reviews(ctx context.Context, bookID string) ([]Review, error) {
	if _, err := cs.storage.GetOne(ctx, bookID); err != nil {
		return nil, err
	}
	return cs.storage.Reviews(ctx, bookID)
}

// CartView is the cart content together with its derived totals,
// recomputed on every read.
type CartView struct {
	Lines  []CartLine `json:"lines"`
	Totals Totals     `json:"totals"`
}

// WishlistEntry pairs a wishlisted book with its membership flag for
// the heart affordance. The flag is always true on a wishlist read and
// reports the new state after a toggle.
type WishlistEntry struct {
	Book       Book `json:"book"`
	Wishlisted bool `json:"wishlisted"`
}

type OrderServiceProvider interface {
	Cart(ctx context.Context) (CartView, error)
	AddToCart(ctx context.Context, bookID string, quantity int) (CartLine, error)
	SetQuantity(ctx context.Context, bookID string, quantity int) (CartLine, error)
	RemoveFromCart(ctx context.Context, bookID string) error
	Wishlist(ctx context.Context) ([]Book, error)
	ToggleWishlist(ctx context.Context, bookID string) (WishlistEntry, error)
	Checkout(ctx context.Context) (Order, error)
	GetOrder(ctx context.Context, id string) (Order, error)
}

// OrderService owns the session order state: cart mutations, wishlist
// toggling and the checkout handoff to the background consumer.
type OrderService struct {
	logger     *zap.Logger
	config     *Config
	clock      Clocker
	idsHandler UIDHandler
	catalog    CatalogStorage
	cart       CartStorage
	wishlist   WishlistStorage
	orders     OrderStorage
	queue      Queuer
	rules      PricingRules
}

func NewOrderService(
	logger *zap.Logger,
	config *Config,
	clock Clocker,
	idsHandler UIDHandler,
	catalog CatalogStorage,
	cart CartStorage,
	wishlist WishlistStorage,
	orders OrderStorage,
	queue Queuer,
) OrderServiceProvider {
	return &OrderService{
		logger:     logger,
		config:     config,
		clock:      clock,
		idsHandler: idsHandler,
		catalog:    catalog,
		cart:       cart,
		wishlist:   wishlist,
		orders:     orders,
		queue:      queue,
		rules:      config.PricingRules(),
	}
}

func (osv *OrderService) Cart(ctx context.Context) (CartView, error) {
	lines, err := osv.cart.Lines(ctx)
	if err != nil {
		return CartView{}, err
	}
	return CartView{Lines: lines, Totals: ComputeTotals(lines, osv.rules)}, nil
}

func (osv *OrderService) AddToCart(ctx context.Context, bookID string, quantity int) (CartLine, error) {
	book, err := osv.catalog.GetOne(ctx, bookID)
	if err != nil {
		return CartLine{}, err
	}
	return osv.cart.AddLine(ctx, book, quantity)
}

func (osv *OrderService) SetQuantity(ctx context.Context, bookID string, quantity int) (CartLine, error) {
	return osv.cart.SetQuantity(ctx, bookID, quantity)
}

func (osv *OrderService) RemoveFromCart(ctx context.Context, bookID string) error {
	return osv.cart.RemoveLine(ctx, bookID)
}

func (osv *OrderService) Wishlist(ctx context.Context) ([]Book, error) {
	ids, err := osv.wishlist.IDs(ctx)
	if err != nil {
		return nil, err
	}
	books := []Book{}
	for _, id := range ids {
		book, err := osv.catalog.GetOne(ctx, id)
		if err != nil {
			osv.logger.Warn("service: wishlisted book missing from catalog", zap.String("book.id", id))
			continue
		}
		books = append(books, book)
	}
	return books, nil
}

func (osv *OrderService) ToggleWishlist(ctx context.Context, bookID string) (WishlistEntry, error) {
	book, err := osv.catalog.GetOne(ctx, bookID)
	if err != nil {
		return WishlistEntry{}, err
	}
	wishlisted, err := osv.wishlist.Toggle(ctx, bookID)
	if err != nil {
		return WishlistEntry{}, err
	}
	return WishlistEntry{Book: book, Wishlisted: wishlisted}, nil
}

// Checkout snapshots the cart into a pending order, hands it to the
// processing queue and clears the cart. Totals are computed once here
// and frozen on the order.
func (osv *OrderService) Checkout(ctx context.Context) (Order, error) {
	lines, err := osv.cart.Lines(ctx)
	if err != nil {
		return Order{}, err
	}
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}

	order := Order{
		ID:        osv.idsHandler.Generate(OrderIDPrefix),
		Lines:     lines,
		Totals:    ComputeTotals(lines, osv.rules),
		Status:    OrderStatusPending,
		CreatedAt: osv.clock.Now(),
	}

	if err = osv.orders.Add(ctx, order); err != nil {
		return Order{}, err
	}

	if err = osv.queue.Push(ctx, CheckoutQueue, order); err != nil {
		osv.logger.Error("service: failed to push order to queue", zap.String("qid", CheckoutQueue), zap.Error(err))
		return Order{}, err
	}

	if err = osv.cart.Clear(ctx); err != nil {
		return Order{}, err
	}
	return order, nil
}

func (osv *OrderService) GetOrder(ctx context.Context, id string) (Order, error) {
	return osv.orders.GetOne(ctx, id)
}

type AuthServiceProvider interface {
	SignIn(ctx context.Context, req AuthRequest) (Session, error)
	SignUp(ctx context.Context, req AuthRequest) (Session, error)
	Reset(ctx context.Context, email string) error
}

// AuthService is the mock authentication flow behind the storefront
// auth modal. It validates nothing beyond payload shape, waits the
// configured processing delay and answers with a throwaway session.
type AuthService struct {
	logger     *zap.Logger
	config     *Config
	clock      Clocker
	idsHandler UIDHandler
}

func NewAuthService(logger *zap.Logger, config *Config, clock Clocker, idsHandler UIDHandler) AuthServiceProvider {
	return &AuthService{
		logger:     logger,
		config:     config,
		clock:      clock,
		idsHandler: idsHandler,
	}
}

func (as *AuthService) session(req AuthRequest) Session {
	name := req.Name
	if name == "" {
		// sign-in form has no name field, derive one from the email.
		name = strings.SplitN(req.Email, "@", 2)[0]
	}
	return Session{
		Token: as.idsHandler.Generate(SessionIDPrefix),
		User: User{
			ID:    as.idsHandler.Generate("u"),
			Name:  name,
			Email: req.Email,
		},
		CreatedAt: as.clock.Now(),
	}
}

func (as *AuthService) SignIn(ctx context.Context, req AuthRequest) (Session, error) {
	if err := SleepContext(ctx, as.config.Store.AuthDelay); err != nil {
		return Session{}, err
	}
	as.logger.Info("service: mock sign-in", zap.String("user.email", req.Email))
	return as.session(req), nil
}

func (as *AuthService) SignUp(ctx context.Context, req AuthRequest) (Session, error) {
	if err := SleepContext(ctx, as.config.Store.AuthDelay); err != nil {
		return Session{}, err
	}
	as.logger.Info("service: mock sign-up", zap.String("user.email", req.Email))
	return as.session(req), nil
}

func (as *AuthService) Reset(ctx context.Context, email string) error {
	if err := SleepContext(ctx, as.config.Store.AuthDelay); err != nil {
		return err
	}
	as.logger.Info("service: mock password reset", zap.String("user.email", email))
	return nil
}
