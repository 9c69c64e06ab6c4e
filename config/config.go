package config

type Config struct {
	AppName                       string   `env:"APP_NAME" env-default:"fern-api"`
	Port                          int      `env:"PORT" env-default:"3004"`
	LogLevel                      string   `env:"LOG_LEVEL" env-default:"info"`
	PrettyLogs                    bool     `env:"PRETTY_LOGS" env-default:"false"`
	HttpServerWriteTimeoutSeconds int      `env:"HTTP_SERVER_WRITE_TIMEOUT_SECONDS" env-default:"10"`
	HttpServerReadTimeoutSeconds  int      `env:"HTTP_SERVER_READ_TIMEOUT_SECONDS" env-default:"10"`
	HttpServerIdleTimeoutSeconds  int      `env:"HTTP_SERVER_IDLE_TIMEOUT_SECONDS" env-default:"10"`
	MaxHeaderBytes                int      `env:"HTTP_SERVER_MAX_HEADER_BYTES" env-default:"64000"` // 64KB
	ReadHeaderTimeoutSeconds      int      `env:"HTTP_SERVER_READ_HEADER_TIMEOUT_SECONDS" env-default:"10"`
	AllowOrigins                  []string `env:"HTTP_SERVER_ALLOW_ORIGINS" env-default:"*"`
	AllowMethods                  []string `env:"HTTP_SERVER_ALLOW_METHODS" env-default:"GET,POST,PUT,DELETE"`
	StartupMaxAttempts            int      `env:"STARTUP_MAX_ATTEMPTS" env-default:"5"`

	// Kafka Consumer (match request ingestion)
	KafkaBrokers         []string `env:"KAFKA_BROKERS" env-default:"localhost:9092"`
	KafkaInputTopic      string   `env:"KAFKA_INPUT_TOPIC" env-default:"match-requests"`
	KafkaConsumerGroup   string   `env:"KAFKA_CONSUMER_GROUP" env-default:"fern-consumer"`
	KafkaConsumerEnabled bool     `env:"KAFKA_CONSUMER_ENABLED" env-default:"true"`

	// Kafka Producer settings
	KafkaOutputTopic  string `env:"KAFKA_OUTPUT_TOPIC" env-default:"match-events"`
	KafkaBatchSize    int    `env:"KAFKA_BATCH_SIZE" env-default:"100"`
	KafkaBatchTimeout int    `env:"KAFKA_BATCH_TIMEOUT_MS" env-default:"100"`
	KafkaRequiredAcks int    `env:"KAFKA_REQUIRED_ACKS" env-default:"1"`
	KafkaCompression  string `env:"KAFKA_COMPRESSION" env-default:"snappy"`

	// Matching engine
	WeightCategory  float64 `env:"MATCH_WEIGHT_CATEGORY" env-default:"0.15"`
	WeightLocation  float64 `env:"MATCH_WEIGHT_LOCATION" env-default:"0.15"`
	WeightTFIDF     float64 `env:"MATCH_WEIGHT_TFIDF" env-default:"0.25"`
	WeightFuzzy     float64 `env:"MATCH_WEIGHT_FUZZY" env-default:"0.15"`
	WeightAttribute float64 `env:"MATCH_WEIGHT_ATTRIBUTE" env-default:"0.20"`
	WeightDate      float64 `env:"MATCH_WEIGHT_DATE" env-default:"0.10"`
	MinScore        float64 `env:"MATCH_MIN_SCORE" env-default:"0.5"`
	TopK            int     `env:"MATCH_TOP_K" env-default:"20"`
	DecayRadiusKm   float64 `env:"MATCH_DECAY_RADIUS_KM" env-default:"5"`
	MaxWindowDays   int     `env:"MATCH_MAX_WINDOW_DAYS" env-default:"30"`
	NeutralScore    float64 `env:"MATCH_NEUTRAL_SCORE" env-default:"0.5"`
	SameGroupScore  float64 `env:"MATCH_SAME_GROUP_SCORE" env-default:"0.5"`
	FuzzyAlgorithm  string  `env:"MATCH_FUZZY_ALGORITHM" env-default:"levenshtein"`
	MatchWorkers    int     `env:"MATCH_WORKERS" env-default:"4"`

	// Tracing
	TracingEnabled  bool   `env:"TRACING_ENABLED" env-default:"false"`
	TracingEndpoint string `env:"TRACING_ENDPOINT" env-default:"localhost:4317"`
	TracingProtocol string `env:"TRACING_PROTOCOL" env-default:"grpc"`
	TracingInsecure bool   `env:"TRACING_INSECURE" env-default:"true"`

	// Metrics
	MetricsEnabled bool `env:"METRICS_ENABLED" env-default:"true"`
}
