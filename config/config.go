package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	CascadeFile   string // каскад Хаара для детекции лиц
	PuplocCascade string // каскад pigo для локализации зрачков
	FlpCascadeDir string // точечные каскады ориентиров pigo

	OutputSize       int    // сторона квадрата подготовленных изображений
	CropSize         int    // сторона квадрата кропов лица
	OutputFormat     string // png, jpg или gif
	ClassName        string
	LoraName         string
	RemoveBackground bool
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		CascadeFile:   getEnv("CASCADE_FILE", "haarcascade_frontalface_default.xml"),
		PuplocCascade: os.Getenv("PIGO_PUPLOC_CASCADE"),
		FlpCascadeDir: os.Getenv("PIGO_FLP_DIR"),

		OutputSize:       getEnvInt("OUTPUT_SIZE", 768),
		CropSize:         getEnvInt("CROP_SIZE", 512),
		OutputFormat:     getEnv("OUTPUT_FORMAT", "png"),
		ClassName:        getEnv("CLASS_NAME", "person"),
		LoraName:         os.Getenv("LORA_NAME"),
		RemoveBackground: getEnvBool("REMOVE_BACKGROUND", false),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
