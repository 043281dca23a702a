package producer

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/avoronova/homework-bot/internal/repository"
	"github.com/avoronova/homework-bot/internal/service"
)

// sender is the part of tgbotapi.BotAPI the poller needs
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Poller periodically requests homework statuses and produces a telegram notification
// for every status change
type Poller struct {
	bot      sender
	chatID   int64
	fetcher  repository.Fetcher
	tracker  *service.Tracker
	interval time.Duration

	// from is sent to the API as from_date and advances to the response's
	// current_date after every successful cycle
	from int64
}

func NewPoller(bot sender, chatID int64, fetcher repository.Fetcher, tracker *service.Tracker, interval time.Duration) *Poller {
	return &Poller{
		bot:      bot,
		chatID:   chatID,
		fetcher:  fetcher,
		tracker:  tracker,
		interval: interval,
		from:     time.Now().Unix(),
	}
}

func (p *Poller) Produce(ctx context.Context) {
	logrus.Infof("poller started produce with interval %v", p.interval)
	go p.poll(ctx)
}

func (p *Poller) poll(ctx context.Context) {
	p.cycle(ctx)

	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			logrus.Infof("poller stopped: %v", ctx.Err())
			return
		case <-t.C:
			p.cycle(ctx)
		}
	}
}

func (p *Poller) cycle(ctx context.Context) {
	statuses, err := p.fetcher.Statuses(ctx, p.from)
	if err != nil {
		p.reportFailure(fmt.Sprintf("Сбой в работе программы: %v", err))
		return
	}

	if len(statuses.Homeworks) == 0 {
		logrus.Debug("poller: no status updates")
		p.finishCycle(statuses.CurrentDate)
		return
	}

	message, changed, err := p.tracker.Advance(&statuses.Homeworks[0])
	if err != nil {
		p.reportFailure(fmt.Sprintf("Сбой в работе программы: %v", err))
		return
	}
	if changed {
		p.send(message)
	}
	p.finishCycle(statuses.CurrentDate)
}

func (p *Poller) finishCycle(currentDate int64) {
	p.from = currentDate
	p.tracker.ClearFailure()
}

// reportFailure logs the failure and forwards it to the chat unless
// the same text was already sent last time
func (p *Poller) reportFailure(text string) {
	logrus.Error(text)
	if !p.tracker.ShouldReportFailure(text) {
		return
	}
	p.send(text)
}

func (p *Poller) send(text string) {
	if _, err := p.bot.Send(tgbotapi.NewMessage(p.chatID, text)); err != nil {
		logrus.Errorf("poller couldn't send message: %v", err)
		return
	}
	logrus.Debugf("poller sent message: %s", text)
}
