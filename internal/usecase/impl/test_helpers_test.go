package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"homeplate/internal/domain/entity"
	"homeplate/internal/domain/repository"
	"homeplate/internal/domain/service"
	"homeplate/internal/errors"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- transaction manager fake ---

type fakeTxManager struct {
	factory repository.RepositoryFactory
	err     error
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if tm.err != nil {
		return tm.err
	}

	return fn(tm.factory)
}

// --- repository factory fake ---

type fakeRepoFactory struct {
	userRepo     *fakeUserRepo
	authRepo     *fakeAuthRepo
	refreshRepo  *fakeRefreshTokenRepo
	vendorRepo   *fakeVendorRepo
	mealRepo     *fakeMealRepo
	categoryRepo *fakeCategoryRepo
	orderRepo    *fakeOrderRepo
}

func newFakeRepoFactory() *fakeRepoFactory {
	return &fakeRepoFactory{
		userRepo:     newFakeUserRepo(),
		authRepo:     newFakeAuthRepo(),
		refreshRepo:  newFakeRefreshTokenRepo(),
		vendorRepo:   newFakeVendorRepo(),
		mealRepo:     newFakeMealRepo(),
		categoryRepo: newFakeCategoryRepo(),
		orderRepo:    newFakeOrderRepo(),
	}
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository                 { return f.userRepo }
func (f *fakeRepoFactory) AuthRepo() repository.AuthRepository                 { return f.authRepo }
func (f *fakeRepoFactory) RefreshTokenRepo() repository.RefreshTokenRepository { return f.refreshRepo }
func (f *fakeRepoFactory) VendorRepo() repository.VendorRepository             { return f.vendorRepo }
func (f *fakeRepoFactory) MealRepo() repository.MealRepository                 { return f.mealRepo }
func (f *fakeRepoFactory) CategoryRepo() repository.CategoryRepository         { return f.categoryRepo }
func (f *fakeRepoFactory) OrderRepo() repository.OrderRepository               { return f.orderRepo }

// --- user repository fake ---

type fakeUserRepo struct {
	users     map[uuid.UUID]*entity.User
	createErr error
	updateErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	copied := *user
	r.users[user.ID] = &copied

	return nil
}

// --- auth repository fake ---

type fakeAuthRepo struct {
	records   []*entity.Authentication
	createErr error
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{}
}

func (r *fakeAuthRepo) CreateAuthentication(_ context.Context, auth *entity.Authentication) error {
	if r.createErr != nil {
		return r.createErr
	}
	if auth.ID == uuid.Nil {
		auth.ID = uuid.New()
	}
	copied := *auth
	r.records = append(r.records, &copied)

	return nil
}

func (r *fakeAuthRepo) FindAuthentication(_ context.Context, provider string, providerUserID string) (*entity.Authentication, error) {
	for _, record := range r.records {
		if record.Provider == provider && record.ProviderUserID == providerUserID {
			copied := *record

			return &copied, nil
		}
	}

	return nil, repository.ErrAuthNotFound
}

// --- refresh token repository fake ---

type fakeRefreshTokenRepo struct {
	tokens    map[string]*entity.RefreshToken
	createErr error
	deleteErr error
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*entity.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) CreateRefreshToken(_ context.Context, token *entity.RefreshToken) error {
	if r.createErr != nil {
		return r.createErr
	}
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	copied := *token
	r.tokens[token.TokenHash] = &copied

	return nil
}

func (r *fakeRefreshTokenRepo) FindRefreshTokenByHash(_ context.Context, hash string) (*entity.RefreshToken, error) {
	token, ok := r.tokens[hash]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}
	if token.ExpiresAt.Before(time.Now()) {
		return nil, repository.ErrRefreshTokenExpired
	}
	copied := *token

	return &copied, nil
}

func (r *fakeRefreshTokenRepo) DeleteRefreshTokenByHash(_ context.Context, hash string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.tokens[hash]; !ok {
		return repository.ErrRefreshTokenNotFound
	}
	delete(r.tokens, hash)

	return nil
}

// --- vendor repository fake ---

type fakeVendorRepo struct {
	vendors      map[uuid.UUID]*entity.Vendor
	createErr    error
	updateErr    error
	incrementErr error
}

func newFakeVendorRepo() *fakeVendorRepo {
	return &fakeVendorRepo{vendors: make(map[uuid.UUID]*entity.Vendor)}
}

func (r *fakeVendorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, ok := r.vendors[id]
	if !ok {
		return nil, repository.ErrVendorNotFound
	}
	copied := *vendor

	return &copied, nil
}

func (r *fakeVendorRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	for _, vendor := range r.vendors {
		if vendor.UserID == userID {
			copied := *vendor

			return &copied, nil
		}
	}

	return nil, repository.ErrVendorNotFound
}

func (r *fakeVendorRepo) Create(_ context.Context, vendor *entity.Vendor) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, existing := range r.vendors {
		if existing.UserID == vendor.UserID {
			return repository.ErrDuplicateVendor
		}
	}
	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	copied := *vendor
	r.vendors[vendor.ID] = &copied

	return nil
}

func (r *fakeVendorRepo) Update(_ context.Context, vendor *entity.Vendor) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.vendors[vendor.ID]; !ok {
		return repository.ErrVendorNotFound
	}
	copied := *vendor
	r.vendors[vendor.ID] = &copied

	return nil
}

func (r *fakeVendorRepo) IncrementTotalOrders(_ context.Context, id uuid.UUID) error {
	if r.incrementErr != nil {
		return r.incrementErr
	}
	vendor, ok := r.vendors[id]
	if !ok {
		return repository.ErrVendorNotFound
	}
	vendor.TotalOrders++

	return nil
}

// --- meal repository fake ---

type fakeMealRepo struct {
	meals     map[uuid.UUID]*entity.Meal
	createErr error
	updateErr error
	deleteErr error
}

func newFakeMealRepo() *fakeMealRepo {
	return &fakeMealRepo{meals: make(map[uuid.UUID]*entity.Meal)}
}

func (r *fakeMealRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Meal, error) {
	meal, ok := r.meals[id]
	if !ok {
		return nil, repository.ErrMealNotFound
	}
	copied := *meal

	return &copied, nil
}

func (r *fakeMealRepo) FindByVendor(_ context.Context, vendorID uuid.UUID) ([]*entity.Meal, error) {
	var meals []*entity.Meal
	for _, meal := range r.meals {
		if meal.VendorID == vendorID {
			copied := *meal
			meals = append(meals, &copied)
		}
	}

	return meals, nil
}

func (r *fakeMealRepo) Browse(_ context.Context, filter repository.MealFilter) ([]*entity.Meal, error) {
	var meals []*entity.Meal
	for _, meal := range r.meals {
		if filter.VendorID != uuid.Nil && meal.VendorID != filter.VendorID {
			continue
		}
		if filter.CategoryID != uuid.Nil && meal.CategoryID != filter.CategoryID {
			continue
		}
		if filter.OnlyOrderable && !meal.IsOrderable() {
			continue
		}
		copied := *meal
		meals = append(meals, &copied)
	}

	return meals, nil
}

func (r *fakeMealRepo) Create(_ context.Context, meal *entity.Meal) error {
	if r.createErr != nil {
		return r.createErr
	}
	if meal.ID == uuid.Nil {
		meal.ID = uuid.New()
	}
	copied := *meal
	r.meals[meal.ID] = &copied

	return nil
}

func (r *fakeMealRepo) Update(_ context.Context, meal *entity.Meal) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.meals[meal.ID]; !ok {
		return repository.ErrMealNotFound
	}
	copied := *meal
	r.meals[meal.ID] = &copied

	return nil
}

func (r *fakeMealRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.meals[id]; !ok {
		return repository.ErrMealNotFound
	}
	delete(r.meals, id)

	return nil
}

// --- category repository fake ---

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}
	copied := *category

	return &copied, nil
}

func (r *fakeCategoryRepo) FindActive(_ context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	for _, category := range r.categories {
		if category.IsActive {
			copied := *category
			categories = append(categories, &copied)
		}
	}

	return categories, nil
}

// --- order repository fake ---

type fakeOrderRepo struct {
	orders            map[uuid.UUID]*entity.Order
	createErr         error
	updateStatusErr   error
	updateStatusCalls int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	copied := *order

	return &copied, nil
}

func (r *fakeOrderRepo) FindByVendor(_ context.Context, vendorID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range r.orders {
		if order.VendorID == vendorID {
			copied := *order
			orders = append(orders, &copied)
		}
	}

	return orders, nil
}

func (r *fakeOrderRepo) FindByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, order := range r.orders {
		if order.CustomerID == customerID {
			copied := *order
			orders = append(orders, &copied)
		}
	}

	return orders, nil
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	copied := *order
	r.orders[order.ID] = &copied

	return nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus) error {
	r.updateStatusCalls++
	if r.updateStatusErr != nil {
		return r.updateStatusErr
	}
	order, ok := r.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.Status = status

	return nil
}

// --- password hasher fake ---

type fakeHasher struct {
	hashErr     error
	strengthErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (h *fakeHasher) ValidatePasswordStrength(password string) error {
	if h.strengthErr != nil {
		return h.strengthErr
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	return nil
}

// --- token service fake ---

type fakeTokenService struct {
	issued      int
	refreshFor  map[string]uuid.UUID
	generateErr error
	validateErr error
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{refreshFor: make(map[string]uuid.UUID)}
}

func (s *fakeTokenService) GenerateTokens(userID uuid.UUID, _ []string) (string, string, error) {
	if s.generateErr != nil {
		return "", "", s.generateErr
	}
	s.issued++
	access := fmt.Sprintf("access-%d", s.issued)
	refresh := fmt.Sprintf("refresh-%d", s.issued)
	s.refreshFor[refresh] = userID

	return access, refresh, nil
}

func (s *fakeTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	if !strings.HasPrefix(tokenString, "access-") {
		return nil, errors.New("invalid access token")
	}

	return &service.Claims{Type: "access"}, nil
}

func (s *fakeTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	userID, ok := s.refreshFor[tokenString]
	if !ok {
		return nil, errors.New("invalid refresh token")
	}

	return &service.Claims{UserID: userID, Type: "refresh"}, nil
}

func (s *fakeTokenService) HashToken(tokenString string) string {
	return "hash:" + tokenString
}

func (s *fakeTokenService) GetRefreshTokenDuration() time.Duration {
	return time.Hour * 24 * 7
}
