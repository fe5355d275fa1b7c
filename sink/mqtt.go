package sink

import (
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/matt-g-everett/animtx/anim"
)

// Config holds the MQTT connection settings for a Publisher.
type Config struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Topic    string `yaml:"topic"`
}

// Publisher forwards value updates to an MQTT topic per (target, property)
// pair, as <topic>/<target>/<property> with the value as a text payload.
type Publisher struct {
	client mqtt.Client
	topic  string
	log    *zap.Logger
}

// NewPublisher creates an instance of a Publisher on an existing client.
func NewPublisher(client mqtt.Client, topic string, log *zap.Logger) *Publisher {
	if log == nil {
		log = zap.NewNop()
	}
	p := new(Publisher)
	p.client = client
	p.topic = topic
	p.log = log
	return p
}

// Update publishes one value update. It satisfies anim.Callback. The publish
// token is not waited on; the scheduler must not block on the broker.
func (p *Publisher) Update(targetID, property string, value anim.Value) {
	topic := p.topic + "/" + targetID + "/" + property
	token := p.client.Publish(topic, 1, false, value.String())
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			p.log.Warn("publish failed", zap.String("topic", topic), zap.Error(err))
		}
	}()
}
