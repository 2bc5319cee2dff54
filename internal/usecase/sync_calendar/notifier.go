package sync_calendar

// Notifier связывает путь создания бронирования с фоновой синхронизацией:
// создание лишь дёргает Notify, а всю работу выполняет цикл, слушающий C.
// Буфер в один элемент схлопывает шквал уведомлений в один проход.
type Notifier struct {
	ch chan struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{}, 1)}
}

// Notify будит цикл синхронизации, никогда не блокируется
func (n *Notifier) Notify() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// C канал, который слушает цикл синхронизации
func (n *Notifier) C() <-chan struct{} {
	return n.ch
}
