package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bossbaby/BBS-BookingService/internal/domain"
)

// Client клиент внешнего календаря-зеркала.
// Все вызовы best-effort: ошибки зеркала логируются и никогда не влияют на
// судьбу самого бронирования (см. sync_calendar).
type Client struct {
	baseURL    string
	calendarID string
	location   *time.Location
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента календаря
func NewClient(baseURL, calendarID string, location *time.Location, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		calendarID: calendarID,
		location:   location,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateEvent создает событие для бронирования и возвращает ID события
func (c *Client) CreateEvent(ctx context.Context, booking *domain.Booking) (string, error) {
	start, end, err := c.eventTimes(booking)
	if err != nil {
		return "", fmt.Errorf("%w: failed to build event times: %v", ErrInternal, err)
	}

	payload := createEventRequest{
		Summary: fmt.Sprintf("Photo shoot: %s (%s)", booking.BabyName, booking.PhotoType),
		Description: fmt.Sprintf("Client: %s\nMobile: %s",
			booking.BabyName, booking.MobileNo),
		Start:    start.Format(time.RFC3339),
		End:      end.Format(time.RFC3339),
		Timezone: c.location.String(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/calendars/%s/events", c.baseURL, url.PathEscape(c.calendarID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode >= 500:
		return "", fmt.Errorf("%w: status code %d", ErrUnavailable, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var event createEventResponse
	if err := json.NewDecoder(resp.Body).Decode(&event); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if event.ID == "" {
		return "", fmt.Errorf("%w: empty event id", ErrInvalidResponse)
	}

	return event.ID, nil
}

// DeleteEvent удаляет событие из календаря по ID
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	reqURL := fmt.Sprintf("%s/calendars/%s/events/%s",
		c.baseURL, url.PathEscape(c.calendarID), url.PathEscape(eventID))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrEventNotFound
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status code %d", ErrUnavailable, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// eventTimes вычисляет границы 30-минутного события в таймзоне студии
func (c *Client) eventTimes(booking *domain.Booking) (time.Time, time.Time, error) {
	minutes, err := booking.TimeSlot.Minutes()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start := time.Date(
		booking.Date.Year(), booking.Date.Month(), booking.Date.Day(),
		minutes/60, minutes%60, 0, 0, c.location,
	)
	end := start.Add(time.Duration(domain.DefaultSlotDurationMinutes) * time.Minute)
	return start, end, nil
}
