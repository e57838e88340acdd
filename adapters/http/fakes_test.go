package http

import (
	"context"
	"sync"
	"time"

	"github.com/reservafacil/reserva-api/internal/application/service"
	"github.com/reservafacil/reserva-api/internal/domain/account"
	"github.com/reservafacil/reserva-api/internal/domain/favorite"
	"github.com/reservafacil/reserva-api/internal/domain/rating"
	"github.com/reservafacil/reserva-api/internal/domain/reservation"
	"github.com/reservafacil/reserva-api/internal/domain/restaurant"
)

// In-memory repositories backing the handler tests. They reproduce the
// sentinel-error behaviour of the Postgres adapters.

type memAccountRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*account.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{nextID: 1, byID: make(map[int64]*account.Account)}
}

func (r *memAccountRepo) Save(_ context.Context, a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == a.Email {
			return account.ErrEmailTaken
		}
	}
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *memAccountRepo) FindByID(_ context.Context, id int64) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memAccountRepo) FindByEmail(_ context.Context, email string) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.byID {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, account.ErrAccountNotFound
}

func (r *memAccountRepo) List(_ context.Context) ([]*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*account.Account, 0, len(r.byID))
	for _, a := range r.byID {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memAccountRepo) Update(_ context.Context, a *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[a.ID]; !ok {
		return account.ErrAccountNotFound
	}
	for id, existing := range r.byID {
		if id != a.ID && existing.Email == a.Email {
			return account.ErrEmailTaken
		}
	}
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *memAccountRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return account.ErrAccountNotFound
	}
	delete(r.byID, id)
	return nil
}

type memRestaurantRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*restaurant.Restaurant
}

func newMemRestaurantRepo() *memRestaurantRepo {
	return &memRestaurantRepo{nextID: 1, byID: make(map[int64]*restaurant.Restaurant)}
}

func (r *memRestaurantRepo) Save(_ context.Context, rest *restaurant.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == rest.Email {
			return restaurant.ErrEmailTaken
		}
	}
	rest.ID = r.nextID
	r.nextID++
	cp := *rest
	r.byID[rest.ID] = &cp
	return nil
}

func (r *memRestaurantRepo) FindByID(_ context.Context, id int64) (*restaurant.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rest, ok := r.byID[id]
	if !ok {
		return nil, restaurant.ErrRestaurantNotFound
	}
	cp := *rest
	return &cp, nil
}

func (r *memRestaurantRepo) FindByEmail(_ context.Context, email string) (*restaurant.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rest := range r.byID {
		if rest.Email == email {
			cp := *rest
			return &cp, nil
		}
	}
	return nil, restaurant.ErrRestaurantNotFound
}

func (r *memRestaurantRepo) List(_ context.Context) ([]*restaurant.Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*restaurant.Restaurant, 0, len(r.byID))
	for _, rest := range r.byID {
		cp := *rest
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memRestaurantRepo) Update(_ context.Context, rest *restaurant.Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[rest.ID]; !ok {
		return restaurant.ErrRestaurantNotFound
	}
	cp := *rest
	r.byID[rest.ID] = &cp
	return nil
}

func (r *memRestaurantRepo) UpdateValoracion(_ context.Context, id int64, valoracion float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rest, ok := r.byID[id]
	if !ok {
		return restaurant.ErrRestaurantNotFound
	}
	rest.Valoracion = valoracion
	return nil
}

func (r *memRestaurantRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return restaurant.ErrRestaurantNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *memRestaurantRepo) SaveAll(ctx context.Context, rs []*restaurant.Restaurant) error {
	for _, rest := range rs {
		if err := r.Save(ctx, rest); err != nil {
			return err
		}
	}
	return nil
}

type memReservationRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*reservation.Reservation
}

func newMemReservationRepo() *memReservationRepo {
	return &memReservationRepo{nextID: 1, byID: make(map[int64]*reservation.Reservation)}
}

func (r *memReservationRepo) Save(_ context.Context, res *reservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res.ID = r.nextID
	r.nextID++
	cp := *res
	r.byID[res.ID] = &cp
	return nil
}

func (r *memReservationRepo) FindByID(_ context.Context, id int64) (*reservation.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.byID[id]
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *memReservationRepo) ListByUsuario(_ context.Context, usuarioID int64) ([]*reservation.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*reservation.Reservation, 0)
	for _, res := range r.byID {
		if res.UsuarioID == usuarioID {
			cp := *res
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memReservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[res.ID]; !ok {
		return reservation.ErrReservationNotFound
	}
	cp := *res
	r.byID[res.ID] = &cp
	return nil
}

func (r *memReservationRepo) Cancel(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.byID[id]
	if !ok {
		return reservation.ErrReservationNotFound
	}
	res.Estado = reservation.EstadoCancelada
	return nil
}

type memFavoriteRepo struct {
	mu     sync.Mutex
	nextID int64
	items  []*favorite.Favorite
}

func newMemFavoriteRepo() *memFavoriteRepo {
	return &memFavoriteRepo{nextID: 1}
}

func (r *memFavoriteRepo) Save(_ context.Context, f *favorite.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.UsuarioID == f.UsuarioID && existing.RestaurantesID == f.RestaurantesID {
			return favorite.ErrDuplicate
		}
	}
	f.ID = r.nextID
	r.nextID++
	cp := *f
	r.items = append(r.items, &cp)
	return nil
}

func (r *memFavoriteRepo) Find(_ context.Context, usuarioID, restaurantesID int64) (*favorite.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.items {
		if f.UsuarioID == usuarioID && f.RestaurantesID == restaurantesID {
			cp := *f
			return &cp, nil
		}
	}
	return nil, favorite.ErrFavoriteNotFound
}

func (r *memFavoriteRepo) ListByUsuario(_ context.Context, usuarioID int64) ([]*favorite.Favorite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*favorite.Favorite, 0)
	for _, f := range r.items {
		if f.UsuarioID == usuarioID {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memFavoriteRepo) Delete(_ context.Context, usuarioID, restaurantesID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, f := range r.items {
		if f.UsuarioID == usuarioID && f.RestaurantesID == restaurantesID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return favorite.ErrFavoriteNotFound
}

type memRatingRepo struct {
	mu     sync.Mutex
	nextID int64
	items  []*rating.Rating
}

func newMemRatingRepo() *memRatingRepo {
	return &memRatingRepo{nextID: 1}
}

func (r *memRatingRepo) Save(_ context.Context, v *rating.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.UsuarioID == v.UsuarioID && existing.RestauranteID == v.RestauranteID {
			return rating.ErrDuplicate
		}
	}
	v.ID = r.nextID
	r.nextID++
	cp := *v
	r.items = append(r.items, &cp)
	return nil
}

func (r *memRatingRepo) FindByUsuarioAndRestaurante(_ context.Context, usuarioID, restauranteID int64) (*rating.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.items {
		if v.UsuarioID == usuarioID && v.RestauranteID == restauranteID {
			cp := *v
			return &cp, nil
		}
	}
	return nil, rating.ErrRatingNotFound
}

func (r *memRatingRepo) ListByRestaurante(_ context.Context, restauranteID int64) ([]*rating.Rating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*rating.Rating, 0)
	for _, v := range r.items {
		if v.RestauranteID == restauranteID {
			cp := *v
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRatingRepo) Update(_ context.Context, v *rating.Rating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if existing.UsuarioID == v.UsuarioID && existing.RestauranteID == v.RestauranteID {
			cp := *v
			r.items[i] = &cp
			return nil
		}
	}
	return rating.ErrRatingNotFound
}

func (r *memRatingRepo) Delete(_ context.Context, usuarioID, restauranteID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.items {
		if v.UsuarioID == usuarioID && v.RestauranteID == restauranteID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return rating.ErrRatingNotFound
}

func (r *memRatingRepo) AverageByRestaurante(_ context.Context, restauranteID int64) (float64, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum, count := 0, 0
	for _, v := range r.items {
		if v.RestauranteID == restauranteID {
			sum += v.Puntuacion
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type memTokenStore struct {
	mu     sync.Mutex
	tokens map[string]string
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{tokens: make(map[string]string)}
}

func (s *memTokenStore) Save(_ context.Context, jti, subject string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[jti] = subject
	return nil
}

func (s *memTokenStore) Get(_ context.Context, jti string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subject, ok := s.tokens[jti]
	if !ok {
		return "", service.ErrTokenNotFound
	}
	return subject, nil
}

func (s *memTokenStore) Delete(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, jti)
	return nil
}

type noopPublisher struct{}

func (noopPublisher) PublishReservaEvent(context.Context, service.ReservaEvent) error {
	return nil
}

func (noopPublisher) PublishValoracionEvent(context.Context, service.ValoracionEvent) error {
	return nil
}
