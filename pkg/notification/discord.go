package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dupemark/dupemark/pkg/config"
)

const (
	maxEmbedsPerMessage = 10

	// hardcoded limit of fields to avoid hammering the api
	maxTotalFields    = 250
	maxFieldsPerEmbed = 25
)

type DiscordMessage struct {
	Content interface{}    `json:"content"`
	Embeds  []DiscordEmbed `json:"embeds,omitempty"`
}

type DiscordEmbed struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Color       int                  `json:"color"`
	Fields      []DiscordEmbedsField `json:"fields,omitempty"`
	Footer      DiscordEmbedsFooter  `json:"footer,omitempty"`
	Timestamp   time.Time            `json:"timestamp"`
}

type DiscordEmbedsFooter struct {
	Text string `json:"text"`
}

type DiscordEmbedsField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type EmbedColors int

const (
	LIGHT_BLUE EmbedColors = 0x58b9ff
	GREEN      EmbedColors = 0x57f287
)

type discordSender struct {
	log    *logrus.Entry
	config config.NotificationsConfig

	httpClient *http.Client
}

func (d *discordSender) Name() string {
	return "discord"
}

func NewDiscordSender(log *logrus.Entry, config config.NotificationsConfig) Sender {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.Logger = nil

	return &discordSender{
		log:        log.WithField("sender", "discord"),
		config:     config,
		httpClient: retryClient.StandardClient(),
	}
}

func (d *discordSender) CanSend() bool {
	return d.config.Service.Discord != ""
}

func (d *discordSender) BuildField(action Action, options BuildOptions) Field {
	var name, value string

	switch action {
	case ActionDuplicate:
		name = options.Duplicate
		value = fmt.Sprintf("Duplicate of `%s` (%s)", options.Original, humanize.IBytes(uint64(options.Size)))
	default:
		name = "Unknown"
		value = "Unknown action"
	}

	return Field{Name: name, Value: value}
}

func (d *discordSender) Send(title string, description string, runTime time.Duration, fields []Field, dryRun bool) error {
	if !d.CanSend() {
		return errors.New("no webhook configured")
	}

	if dryRun {
		title = title + " (Dry Run)"
	}

	// skip sending the message entirely when the run found nothing
	if len(fields) == 0 && d.config.SkipEmptyRun {
		return nil
	}

	embeds := d.buildEmbeds(title, description, runTime, fields)

	// batch embeds to respect the per-message limit
	for i := 0; i < len(embeds); i += maxEmbedsPerMessage {
		end := i + maxEmbedsPerMessage
		if end > len(embeds) {
			end = len(embeds)
		}

		if err := d.sendMessage(DiscordMessage{Content: nil, Embeds: embeds[i:end]}); err != nil {
			return err
		}
	}

	d.log.Debug("Notification sent")
	return nil
}

func (d *discordSender) buildEmbeds(title string, description string, runTime time.Duration, fields []Field) []DiscordEmbed {
	var embeds []DiscordEmbed

	timestamp := time.Now()
	footer := DiscordEmbedsFooter{
		Text: fmt.Sprintf("Run time: %s", runTime.Truncate(time.Millisecond)),
	}

	// only send a summary embed when there is nothing to detail, too much to
	// detail, or detailed notifications are disabled
	if len(fields) == 0 || len(fields) > maxTotalFields || !d.config.Detailed {
		return []DiscordEmbed{{
			Title:       title,
			Description: description,
			Color:       int(LIGHT_BLUE),
			Footer:      footer,
			Timestamp:   timestamp,
		}}
	}

	for i := 0; i < len(fields); i += maxFieldsPerEmbed {
		end := i + maxFieldsPerEmbed
		if end > len(fields) {
			end = len(fields)
		}

		embed := DiscordEmbed{
			Color:     int(GREEN),
			Timestamp: timestamp,
		}

		if i == 0 {
			embed.Title = title
			embed.Description = description
		}

		for _, f := range fields[i:end] {
			embed.Fields = append(embed.Fields, DiscordEmbedsField{
				Name:  f.Name,
				Value: f.Value,
			})
		}

		embeds = append(embeds, embed)
	}

	embeds[len(embeds)-1].Footer = footer

	return embeds
}

func (d *discordSender) sendMessage(message DiscordMessage) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "failed marshalling discord message")
	}

	resp, err := d.httpClient.Post(d.config.Service.Discord, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return errors.Wrap(err, "failed sending discord notification")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return errors.Errorf("unexpected discord response: %d - %s", resp.StatusCode, string(body))
	}

	return nil
}
