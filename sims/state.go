package sims

// stateClass is a minimal immutable cursor over a string, with the method
// shape the host editor uses. Offsets count code points.
const stateClass = `
class State {
	constructor(text, offset) {
		this.text = text;
		this.offset = offset;
	}
	backspace() {
		if (this.offset === 0) return this;
		const units = Array.from(this.text);
		units.splice(this.offset - 1, 1);
		return new State(units.join(""), this.offset - 1);
	}
	deleteBackward() {
		return this.backspace();
	}
	insert(c) {
		const units = Array.from(this.text);
		const added = Array.from(c);
		units.splice(this.offset, 0, ...added);
		return new State(units.join(""), this.offset + added.length);
	}
	equals(o) {
		return this.text === o.text && this.offset === o.offset;
	}
}
`
