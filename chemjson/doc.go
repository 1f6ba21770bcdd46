/*
 * doc.go, part of gogauss.
 *
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicosdotutadotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package chemjson implements the JSON exchange of goGauss data. It
//decodes the dump an external log reader makes of a calculation (numbers
//are kept exact, so integer indexes such as the HOMOs survive the trip),
//encodes result records, and implements a JSON-serializable error, so a
//program written in another language can collect results and errors, for
//instance, via UNIX pipes.
package chemjson
