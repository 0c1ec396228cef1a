package feed

import (
	"context"
	"sync"

	"github.com/bangshop/admin/internal/domain"
	"github.com/bangshop/admin/internal/ports"
	"github.com/bangshop/admin/pkg/metrics"
)

// Проверка, что Broker удовлетворяет порту OrderFeed.
var _ ports.OrderFeed = (*Broker)(nil)

// Broker — рассылка полных снапшотов заказов подписчикам.
// Семантика: каждое уведомление несёт ПОЛНЫЙ текущий набор; подписчики
// никогда не мержат и не диффят. Каналы буферизованы на один элемент,
// доставка latest-wins — медленный подписчик не блокирует рассылку и
// после пробуждения видит только самый свежий снапшот.
type Broker struct {
	mu     sync.Mutex
	subs   map[uint64]chan []*domain.Order
	nextID uint64
	latest []*domain.Order
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[uint64]chan []*domain.Order)}
}

// Subscribe — регистрирует подписчика и сразу доставляет ему последний
// известный снапшот (если он был). Возвращённая функция отписки
// идемпотентна; отписка также гарантирована при отмене контекста.
func (b *Broker) Subscribe(ctx context.Context) (<-chan []*domain.Order, func()) {
	ch := make(chan []*domain.Order, 1)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	if b.latest != nil {
		ch <- domain.CloneOrders(b.latest)
	}
	metrics.FeedSubscribers.Set(float64(len(b.subs)))
	b.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			if _, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(ch)
				metrics.FeedSubscribers.Set(float64(len(b.subs)))
			}
			b.mu.Unlock()
		})
	}

	go func() {
		<-ctx.Done()
		unsubscribe()
	}()

	return ch, unsubscribe
}

// Broadcast — разослать снапшот всем подписчикам.
// Каждый получает собственную копию, чтобы никто не делил срезы items.
func (b *Broker) Broadcast(_ context.Context, snapshot []*domain.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.latest = domain.CloneOrders(snapshot)
	metrics.FeedSnapshots.Inc()

	for _, ch := range b.subs {
		next := domain.CloneOrders(b.latest)
		select {
		case ch <- next:
		default:
			// подписчик ещё не забрал предыдущий снапшот — заменяем его свежим
			select {
			case <-ch:
			default:
			}
			ch <- next
		}
	}
}
