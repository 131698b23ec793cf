package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/FutureNHS/futurenhs-platform/core/config"
)

var _ = Describe("Load", func() {
	BeforeEach(func() {
		t := GinkgoT()
		t.Setenv("WORKSPACE_ENV", "test")
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/workspaces")
		t.Setenv("EVENTS_BACKEND", "redis")
		t.Setenv("EVENTS_KAFKA_BROKERS", "")
		t.Setenv("SNOWFLAKE_NODE_ID", "7")
	})

	It("reads the environment with defaults", func() {
		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Env).To(Equal("test"))
		Expect(cfg.NodeID).To(Equal(int64(7)))
		Expect(cfg.IdentityHeader).To(Equal("X-Auth-Id"))
		Expect(cfg.Events.Backend).To(Equal(config.EventsBackendRedis))
		Expect(cfg.Events.RedisStream).To(Equal("workspace-events"))
		Expect(cfg.IsProduction()).To(BeFalse())
	})

	It("requires a database url", func() {
		GinkgoT().Setenv("DATABASE_URL", "")
		_, err := config.Load()
		Expect(err).To(MatchError(ContainSubstring("DATABASE_URL")))
	})

	It("rejects an out of range node id", func() {
		GinkgoT().Setenv("SNOWFLAKE_NODE_ID", "4096")
		_, err := config.Load()
		Expect(err).To(MatchError(ContainSubstring("SNOWFLAKE_NODE_ID")))
	})

	It("requires brokers for the kafka backend", func() {
		GinkgoT().Setenv("EVENTS_BACKEND", "Kafka")
		_, err := config.Load()
		Expect(err).To(MatchError(ContainSubstring("EVENTS_KAFKA_BROKERS")))
	})

	It("splits the kafka broker list", func() {
		t := GinkgoT()
		t.Setenv("EVENTS_BACKEND", "kafka")
		t.Setenv("EVENTS_KAFKA_BROKERS", "kafka-0:9092, kafka-1:9092,")

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Events.KafkaBrokers).To(Equal([]string{"kafka-0:9092", "kafka-1:9092"}))
	})

	It("rejects an unknown backend", func() {
		GinkgoT().Setenv("EVENTS_BACKEND", "sqs")
		_, err := config.Load()
		Expect(err).To(MatchError(ContainSubstring("unsupported EVENTS_BACKEND")))
	})
})
