package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// Metadata keys that carry Message fields through watermill.
	metaKeyActor = "actor"
	metaKeyTopic = "topic"
)

// WatermillBridge implements Publisher and Subscriber on watermill's GoChannel.
// Every publish and every handled message gets a span from the bridge's tracer.
type WatermillBridge struct {
	pub    message.Publisher
	sub    message.Subscriber
	tracer trace.Tracer
}

// NewWatermillBridge creates an untraced in-memory bus.
func NewWatermillBridge() *WatermillBridge {
	return NewWatermillBridgeWithTracer(nil)
}

// NewWatermillBridgeWithTracer creates an in-memory bus traced by tracer.
// A nil tracer disables tracing.
func NewWatermillBridgeWithTracer(tracer trace.Tracer) *WatermillBridge {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(tracerName)
	}
	goChannel := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	return &WatermillBridge{
		pub:    goChannel,
		sub:    goChannel,
		tracer: tracer,
	}
}

func toWatermill(msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	wmMsg.Metadata.Set(metaKeyActor, msg.Actor)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)
	return wmMsg
}

func fromWatermill(wmMsg *message.Message) Message {
	metadata := make(map[string]string, len(wmMsg.Metadata))
	for k, v := range wmMsg.Metadata {
		if k != metaKeyActor && k != metaKeyTopic {
			metadata[k] = v
		}
	}
	return Message{
		Topic:    wmMsg.Metadata.Get(metaKeyTopic),
		Actor:    wmMsg.Metadata.Get(metaKeyActor),
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}

func (wb *WatermillBridge) span(ctx context.Context, op string, wmMsg *message.Message) (context.Context, trace.Span) {
	topic := wmMsg.Metadata.Get(metaKeyTopic)
	return wb.tracer.Start(ctx, "pubsub."+op+"."+topic,
		trace.WithAttributes(
			attribute.String("messaging.system", "watermill"),
			attribute.String("messaging.operation", op),
			attribute.String("messaging.destination", topic),
			attribute.String("messaging.message_id", wmMsg.UUID),
			attribute.String("zawiya.actor", wmMsg.Metadata.Get(metaKeyActor)),
			attribute.Int("messaging.message_payload_size_bytes", len(wmMsg.Payload)),
		),
	)
}

// Publish implements Publisher.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	wmMsg := toWatermill(msg)
	spanCtx, span := wb.span(ctx, "publish", wmMsg)
	defer span.End()
	wmMsg.SetContext(spanCtx)

	if err := wb.pub.Publish(msg.Topic, wmMsg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Subscribe implements Subscriber. Handler failures are logged and the message is nacked.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			spanCtx, span := wb.span(ctx, "process", wmMsg)
			if err := handler(spanCtx, fromWatermill(wmMsg)); err != nil {
				slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				wmMsg.Nack()
			} else {
				wmMsg.Ack()
			}
			span.End()
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

// Close shuts the bus down and ends every subscription loop.
func (wb *WatermillBridge) Close() error {
	return wb.sub.Close()
}
