// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Publisher sends a retained payload to a topic.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

type mqttPublisher struct {
	client mqtt.Client
}

func (p mqttPublisher) Publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, 0, true, payload)
	token.Wait()
	return token.Error()
}

func connectMQTT(who, broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("%s: MQTT connect to %s: %w", who, broker, token.Error())
	}
	log.Printf("%s: connected to MQTT broker at %s", who, broker)
	return client, nil
}

// subscribe routes payloads on topic to handle and logs handler errors.
func subscribe(client mqtt.Client, who, topic string, handle func([]byte) error) error {
	token := client.Subscribe(topic, 0, func(_ mqtt.Client, msg mqtt.Message) {
		if err := handle(msg.Payload()); err != nil {
			log.Printf("%s: %s: %v", who, topic, err)
		}
	})
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("%s: subscribe %s: %w", who, topic, token.Error())
	}
	log.Printf("%s: subscribed to %s", who, topic)
	return nil
}

// interrupted fires on Ctrl+C or SIGTERM.
func interrupted() <-chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	return sigCh
}
