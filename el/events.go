package el

import "github.com/vango-dev/arbor/pkg/dom"

func on(typ string, handler dom.Handler, opts []dom.ListenerOptions) On {
	o := On{Type: typ, Handler: handler}
	if len(opts) > 0 {
		o.Options = opts[0]
	}
	return o
}

func OnClick(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("click", handler, opts)
}
func OnDblClick(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("dblclick", handler, opts)
}
func OnMouseDown(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("mousedown", handler, opts)
}
func OnMouseUp(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("mouseup", handler, opts)
}
func OnMouseMove(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("mousemove", handler, opts)
}
func OnMouseEnter(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("mouseenter", handler, opts)
}
func OnMouseLeave(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("mouseleave", handler, opts)
}
func OnMouseOver(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("mouseover", handler, opts)
}
func OnMouseOut(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("mouseout", handler, opts)
}
func OnContextMenu(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("contextmenu", handler, opts)
}
func OnWheel(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("wheel", handler, opts)
}
func OnKeyDown(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("keydown", handler, opts)
}
func OnKeyUp(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("keyup", handler, opts)
}
func OnKeyPress(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("keypress", handler, opts)
}
func OnInput(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("input", handler, opts)
}
func OnChange(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("change", handler, opts)
}
func OnSubmit(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("submit", handler, opts)
}
func OnFocus(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("focus", handler, opts)
}
func OnBlur(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("blur", handler, opts)
}
func OnFocusIn(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("focusin", handler, opts)
}
func OnFocusOut(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("focusout", handler, opts)
}
func OnSelect(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("select", handler, opts)
}
func OnInvalid(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("invalid", handler, opts)
}
func OnReset(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("reset", handler, opts)
}
func OnDragStart(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("dragstart", handler, opts)
}
func OnDrag(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("drag", handler, opts)
}
func OnDragEnd(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("dragend", handler, opts)
}
func OnDragEnter(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("dragenter", handler, opts)
}
func OnDragOver(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("dragover", handler, opts)
}
func OnDragLeave(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("dragleave", handler, opts)
}
func OnDrop(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("drop", handler, opts)
}
func OnTouchStart(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("touchstart", handler, opts)
}
func OnTouchMove(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("touchmove", handler, opts)
}
func OnTouchEnd(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("touchend", handler, opts)
}
func OnTouchCancel(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("touchcancel", handler, opts)
}
func OnPointerDown(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("pointerdown", handler, opts)
}
func OnPointerUp(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("pointerup", handler, opts)
}
func OnPointerMove(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("pointermove", handler, opts)
}
func OnPointerEnter(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("pointerenter", handler, opts)
}
func OnPointerLeave(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("pointerleave", handler, opts)
}
func OnPointerCancel(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("pointercancel", handler, opts)
}
func OnScroll(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("scroll", handler, opts)
}
func OnScrollEnd(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("scrollend", handler, opts)
}
func OnPlay(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("play", handler, opts)
}
func OnPause(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("pause", handler, opts)
}
func OnEnded(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("ended", handler, opts)
}
func OnTimeUpdate(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("timeupdate", handler, opts)
}
func OnLoadStart(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("loadstart", handler, opts)
}
func OnLoadedData(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("loadeddata", handler, opts)
}
func OnLoadedMetadata(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("loadedmetadata", handler, opts)
}
func OnCanPlay(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("canplay", handler, opts)
}
func OnCanPlayThrough(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("canplaythrough", handler, opts)
}
func OnProgress(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("progress", handler, opts)
}
func OnSeeking(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("seeking", handler, opts)
}
func OnSeeked(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("seeked", handler, opts)
}
func OnVolumeChange(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("volumechange", handler, opts)
}
func OnRateChange(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("ratechange", handler, opts)
}
func OnDurationChange(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("durationchange", handler, opts)
}
func OnWaiting(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("waiting", handler, opts)
}
func OnPlaying(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("playing", handler, opts)
}
func OnStalled(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("stalled", handler, opts)
}
func OnSuspend(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("suspend", handler, opts)
}
func OnEmptied(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("emptied", handler, opts)
}
func OnError(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("error", handler, opts)
}
func OnLoad(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("load", handler, opts)
}
func OnAbort(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("abort", handler, opts)
}
func OnAnimationStart(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("animationstart", handler, opts)
}
func OnAnimationEnd(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("animationend", handler, opts)
}
func OnAnimationIteration(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("animationiteration", handler, opts)
}
func OnAnimationCancel(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("animationcancel", handler, opts)
}
func OnTransitionStart(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("transitionstart", handler, opts)
}
func OnTransitionEnd(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("transitionend", handler, opts)
}
func OnTransitionRun(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("transitionrun", handler, opts)
}
func OnTransitionCancel(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("transitioncancel", handler, opts)
}
func OnCopy(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("copy", handler, opts)
}
func OnCut(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("cut", handler, opts)
}
func OnPaste(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("paste", handler, opts)
}
func OnToggle(handler dom.Handler, opts ...dom.ListenerOptions) On {
	return on("toggle", handler, opts)
}
