// Package chat wraps the LLM provider behind the lesson tutor: one
// question in, one friendly answer out. Failures never reach the
// caller; every error class degrades to a canned apology so the chat
// widget can always print something.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/codegenio/codegenio/internal/llm"
)

const systemPrompt = "Eres CodeGenie, un genio amigable y divertido que ayuda a los niños a aprender programación. " +
	"Tu objetivo es responder preguntas sobre una lección específica. Explica las cosas de manera muy simple, " +
	"con entusiasmo y usando analogías que un niño pueda entender. Basa tus respuestas únicamente en el contenido " +
	"de la lección proporcionado. Mantén tus respuestas concisas, relevantes a la pregunta y motivadoras."

// Canned user-facing fallbacks.
const (
	msgNoProvider = "Lo siento, mi lámpara mágica no tiene energía. Parece que la clave de API no está configurada. " +
		"Por favor, asegúrate de que un adulto configure la clave de API en el entorno."
	msgConnection = "Oops. Hubo un problema al conectar con mi cerebro de IA. " +
		"Por favor, revisa tu conexión a internet y vuelve a intentarlo."
	msgRateLimit = "Oops. Mi cerebro de IA está muy ocupado en este momento. Espera un poquito y vuelve a intentarlo."
	msgEmpty     = "No pude generar una respuesta. ¡Inténtalo de nuevo!"
)

const (
	defaultMaxTokens   = 512
	defaultTemperature = 0.7
)

// Reply is the tutor's answer.
type Reply struct {
	Text string
}

// Service answers lesson questions through an LLM provider. A nil
// provider is valid and yields the not-configured apology.
type Service struct {
	provider llm.Provider
	timeout  time.Duration
}

// NewService creates a chat service. timeout bounds each request; zero
// means 30 seconds.
func NewService(provider llm.Provider, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{provider: provider, timeout: timeout}
}

// Ask sends the student's question about a lesson and returns the
// tutor's reply. It never returns an error: missing credentials,
// transport failures and empty replies all map to apology text.
func (s *Service) Ask(ctx context.Context, question, lessonContent, lessonTitle string) Reply {
	if s.provider == nil {
		return Reply{Text: msgNoProvider}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserPrompt(question, lessonContent, lessonTitle)},
		},
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		return Reply{Text: apologyFor(err)}
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return Reply{Text: msgEmpty}
	}
	return Reply{Text: text}
}

// buildUserPrompt embeds the lesson and the question in a single
// combined prompt.
func buildUserPrompt(question, lessonContent, lessonTitle string) string {
	return fmt.Sprintf("Lección: %q\n\nContenido:\n%s\n\nPregunta del estudiante: %q",
		lessonTitle, lessonContent, question)
}

func apologyFor(err error) string {
	var rate *llm.ErrRateLimit
	if errors.As(err, &rate) {
		return msgRateLimit
	}
	return msgConnection
}
