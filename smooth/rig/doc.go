// Package rig assembles smoothed components into ready-made cameras.
//
// [Camera] smooths position, orientation and zoom independently and
// composes them with a static chain. [Follow] smooths an eye and a focus
// point and looks from one to the other.
package rig
