// Copyright 2024 - 2026, the Varnantar contributors
// SPDX-License-Identifier: AGPL-3.0-only

package pipeline

import (
	"time"

	"github.com/google/uuid"

	"codeberg.org/varnantar/varnantar/core/jobs"
	"codeberg.org/varnantar/varnantar/core/lang"
	"codeberg.org/varnantar/varnantar/core/phonetic"
	"codeberg.org/varnantar/varnantar/core/pivot"
	"codeberg.org/varnantar/varnantar/core/script"
)

// ProcessOutgoing runs the outgoing message flow. The returned Message has
// the sender's view populated; when sender and receiver share a language
// the receiver's view is populated too and the status is not_needed.
// Otherwise the status is pending and the receiver's view arrives through
// the callbacks and GetMessage.
func (e *Engine) ProcessOutgoing(req OutgoingRequest, cb Callbacks) Message {
	senderLang := e.languageOf(req.Sender.MotherTongue)
	receiverLang := e.languageOf(req.Receiver.MotherTongue)

	det := e.detector.DetectWithHint(req.Text, senderLang)

	text := req.Text

	var corrections []phonetic.Correction

	// Phonetic correction only applies to Latin phonetic input; native
	// script is taken as written.
	if det.IsLatin {
		res := e.corrector.Correct(text, senderLang)
		text = res.Text
		corrections = res.Corrections
	}

	msg := &Message{
		ID:               uuid.NewString(),
		Conversation:     req.Conversation,
		Input:            req.Text,
		SenderLang:       senderLang,
		ReceiverLang:     receiverLang,
		Detected:         det,
		Corrections:      corrections,
		SenderNativeText: e.translit.Transliterate(text, senderLang),
		Status:           StatusPending,
		CreatedAt:        time.Now(),
	}

	if e.reg.IsSame(senderLang, receiverLang) {
		msg.ReceiverNativeText = e.resolver.Translate(msg.SenderNativeText, senderLang, receiverLang).Text
		msg.Status = StatusNotNeeded

		e.messages.Add(msg.ID, msg)

		return *msg
	}

	e.messages.Add(msg.ID, msg)

	fut := e.queue.Enqueue(msg.SenderNativeText, senderLang, receiverLang, outgoingPriority, req.Conversation)

	snap := e.snapshot(msg)

	go e.await(msg, fut, cb)

	return snap
}

// await applies the background job's outcome to the message and fires the
// caller's callback.
func (e *Engine) await(msg *Message, fut *jobs.Future, cb Callbacks) {
	res := <-fut.Done()

	e.mu.Lock()

	if res.Err != nil {
		msg.Status = StatusFailed
		// Best-effort receiver view rather than an error bubble.
		msg.ReceiverNativeText = msg.SenderNativeText
	} else {
		msg.Status = StatusComplete
		msg.ReceiverNativeText = res.Text
	}

	snap := *msg

	e.mu.Unlock()

	if res.Err != nil {
		if cb.OnFailure != nil {
			cb.OnFailure(snap, res.Err)
		}

		return
	}

	if cb.OnReceiverReady != nil {
		cb.OnReceiverReady(snap)
	}
}

// ProcessIncoming renders a received message for the receiver's language.
// Same-language messages pass through; everything else goes through the
// cache-first pivot resolver.
func (e *Engine) ProcessIncoming(text, senderLang, receiverLang string) pivot.Result {
	source := e.languageOf(senderLang)
	target := e.languageOf(receiverLang)

	if e.reg.IsSame(source, target) {
		return pivot.Result{Text: text, Confidence: 1, Method: pivot.MethodPassthrough}
	}

	return e.resolver.Translate(text, source, target)
}

// LivePreview renders partial keystroke input in the mother tongue's
// script. Always synchronous and cache-first; never enqueues background
// work.
func (e *Engine) LivePreview(partial, motherTongue string) string {
	id := e.languageOf(motherTongue)

	det := e.detector.DetectWithHint(partial, id)
	if !det.IsLatin {
		return partial
	}

	corrected := e.corrector.Correct(partial, id)

	return e.translit.Transliterate(corrected.Text, id)
}

// Detect exposes script/language detection with an optional hint.
func (e *Engine) Detect(text, hint string) script.Detection {
	if hint == "" {
		return e.detector.Detect(text)
	}

	return e.detector.DetectWithHint(text, e.languageOf(hint))
}

// GetMessage returns a snapshot of an in-flight or recently finished
// message.
func (e *Engine) GetMessage(id string) (Message, bool) {
	value, ok := e.messages.Get(id)
	if !ok {
		return Message{}, false
	}

	msg, ok := value.(*Message)
	if !ok {
		return Message{}, false
	}

	return e.snapshot(msg), true
}

// Languages lists all supported language profiles.
func (e *Engine) Languages() []lang.Profile {
	return e.reg.Profiles()
}

// QueueStats reports background queue counters.
func (e *Engine) QueueStats() jobs.Stats {
	return e.queue.Stats()
}

// CancelConversation cancels all queued jobs tagged with the conversation.
// Dispatched jobs run to completion. Returns the number cancelled.
func (e *Engine) CancelConversation(conversation string) int {
	return e.queue.Cancel(func(j jobs.Job) bool {
		return j.Tag == conversation
	})
}

// ClearCaches drops every cache tier. In-flight messages are kept.
func (e *Engine) ClearCaches() {
	e.detectCache.Clear()
	e.translitCache.Clear()
	e.pivotCache.Clear()
}

// Close stops the background queue, rejecting queued jobs.
func (e *Engine) Close() {
	e.queue.Close()
}

// languageOf normalizes a declared mother tongue, falling back to English
// when the language is unsupported.
func (e *Engine) languageOf(declared string) lang.ID {
	id, ok := e.reg.Normalize(declared)
	if !ok {
		return lang.English
	}

	return e.reg.Effective(id)
}

func (e *Engine) snapshot(msg *Message) Message {
	e.mu.Lock()
	defer e.mu.Unlock()

	return *msg
}
