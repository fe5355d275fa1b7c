package main

import (
	"flag"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/animtx/anim"
	"github.com/matt-g-everett/animtx/easing"
	"github.com/matt-g-everett/animtx/sink"
)

const demoTarget = "demo_object"

type config struct {
	Engine anim.Config `yaml:"engine"`
	Mqtt   sink.Config `yaml:"mqtt"`
}

type app struct {
	Config  config
	Client  mqtt.Client
	Manager *anim.Manager
	Log     *zap.Logger
}

func newApp(log *zap.Logger) *app {
	a := new(app)
	a.Log = log
	return a
}

func (a *app) readConfig(configPath string) error {
	f, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return yaml.NewDecoder(f).Decode(&a.Config)
}

func (a *app) connectMqtt() error {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("animtx").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second)
	a.Client = mqtt.NewClient(options)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// fanout combines callbacks so one (target, property) key can feed several
// sinks; the manager keeps a single handler per key.
func fanout(callbacks ...anim.Callback) anim.Callback {
	return func(targetID, property string, value anim.Value) {
		for _, cb := range callbacks {
			cb(targetID, property, value)
		}
	}
}

// demo drives a scripted set of animations through the manager so the
// registered sinks render them.
func (a *app) demo() {
	m := a.Manager

	a.Log.Info("fade demo")
	m.Fade(demoTarget, 0.0, 1.0, 2*time.Second, 0, easing.Linear)
	time.Sleep(2500 * time.Millisecond)

	a.Log.Info("scale demo")
	m.Scale(demoTarget, 0.5, 1.5, 2*time.Second, 0, easing.Bounce)
	time.Sleep(2500 * time.Millisecond)

	a.Log.Info("move demo")
	m.Move(demoTarget, [2]float64{0.1, 0.1}, [2]float64{0.9, 0.9}, 2*time.Second, 0, easing.EaseInOut)
	time.Sleep(2500 * time.Millisecond)

	a.Log.Info("colour demo")
	m.ColorHex(demoTarget, "#ff0000", "#0000ff", 2*time.Second, 0, easing.Linear)
	time.Sleep(2500 * time.Millisecond)

	a.Log.Info("sequence demo")
	name, err := m.Sequence([]anim.Spec{
		{TargetID: demoTarget, Property: anim.PropertyOpacity, Start: anim.Scalar(1), End: anim.Scalar(0.2), Duration: time.Second, Easing: easing.EaseOut},
		{TargetID: demoTarget, Property: anim.PropertyScale, Start: anim.Scalar(1), End: anim.Scalar(2), Duration: time.Second, Easing: easing.Back},
		{TargetID: demoTarget, Property: anim.PropertyOpacity, Start: anim.Scalar(0.2), End: anim.Scalar(1), Duration: time.Second, Easing: easing.EaseIn},
	}, 250*time.Millisecond)
	if err != nil {
		a.Log.Error("sequence failed", zap.Error(err))
		return
	}
	a.Log.Info("sequence started", zap.String("group", name))
	time.Sleep(4 * time.Second)
}

func main() {
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	debug := flag.Bool("debug", false, "Enable debug logging.")
	flag.Parse()

	logConfig := zap.NewProductionConfig()
	if *debug {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := logConfig.Build()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	a := newApp(log)
	if err := a.readConfig(*configPath); err != nil {
		log.Warn("config not loaded, using defaults", zap.Error(err))
	}

	a.Manager = anim.NewManager(a.Config.Engine, log)

	handlers := []anim.Callback{sink.NewConsole(os.Stdout).Update}
	if a.Config.Mqtt.URL != "" {
		if err := a.connectMqtt(); err != nil {
			log.Error("mqtt connect failed", zap.Error(err))
		} else {
			publisher := sink.NewPublisher(a.Client, a.Config.Mqtt.Topic, log)
			handlers = append(handlers, publisher.Update)
		}
	}

	handler := fanout(handlers...)
	for _, property := range []string{anim.PropertyOpacity, anim.PropertyScale, anim.PropertyPosition, anim.PropertyColor} {
		a.Manager.RegisterCallback(demoTarget, property, handler)
	}

	a.Manager.Start()
	a.demo()
	a.Manager.Stop()

	if a.Client != nil {
		a.Client.Disconnect(250)
	}
}
